package weight

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrNoData means the sheet holds no usable weight entries at all.
var ErrNoData = errors.New("no weight data")

const (
	dateColumn   = "Date"
	weightColumn = "Weight"
)

// Extract turns raw sheet records into a Series: dates parsed, empty
// weight cells kept as gaps, sorted ascending, deduplicated, trimmed to
// the most recent limit entries. A limit <= 0 keeps everything.
//
// Records with an empty Date cell are skipped with a warning, an
// undated weight has no place on the series. A non-empty cell that does
// not parse fails the whole extraction.
func Extract(records []map[string]string, limit int) (Series, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	entries := make(map[time.Time]Entry, len(records))
	for i, record := range records {
		rawDate := strings.TrimSpace(record[dateColumn])
		if rawDate == "" {
			log.Warnf("skipping record %d: empty date cell", i+1)
			continue
		}
		date, err := ParseEntryDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}

		if _, ok := entries[date]; ok {
			log.Warnf("duplicate date %s, keeping the later record", date.Format(SheetDateLayout))
		}

		rawWeight := strings.TrimSpace(record[weightColumn])
		if rawWeight == "" {
			entries[date] = NewGapEntry(date)
			continue
		}
		w, err := strconv.ParseFloat(rawWeight, 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: parse weight %q: %w", i+1, rawWeight, err)
		}
		entries[date] = NewEntry(date, w)
	}

	if len(entries) == 0 {
		return nil, ErrNoData
	}

	series := make(Series, 0, len(entries))
	for _, e := range entries {
		series = append(series, e)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	if limit > 0 && len(series) > limit {
		series = series[len(series)-limit:]
	}

	return series, nil
}
