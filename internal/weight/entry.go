package weight

import "time"

// Entry is a single row of the measurements sheet: a date and, unless
// the morning weigh-in was skipped, a weight in kilos. A nil Weight is
// a gap and stays a gap, nothing ever interpolates it.
type Entry struct {
	Date   time.Time
	Weight *float64
}

func NewEntry(date time.Time, weight float64) Entry {
	return Entry{Date: date, Weight: &weight}
}

func NewGapEntry(date time.Time) Entry {
	return Entry{Date: date}
}

func (e Entry) HasWeight() bool {
	return e.Weight != nil
}

// Series is a run of entries ordered ascending by date, with unique
// dates. It is rebuilt from the sheet on every run and never persisted.
type Series []Entry

func (s Series) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, e := range s {
		dates[i] = e.Date
	}
	return dates
}

// FirstRecorded returns the earliest entry that has a weight.
func (s Series) FirstRecorded() (Entry, bool) {
	for _, e := range s {
		if e.HasWeight() {
			return e, true
		}
	}
	return Entry{}, false
}

// LastRecorded returns the latest entry that has a weight.
func (s Series) LastRecorded() (Entry, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].HasWeight() {
			return s[i], true
		}
	}
	return Entry{}, false
}

// Point is a dated value on a derived curve, a weekly average or a
// goal progression sample.
type Point struct {
	Date  time.Time
	Value float64
}
