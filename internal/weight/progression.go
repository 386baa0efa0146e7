package weight

import (
	"errors"
	"fmt"
	"time"
)

type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

var (
	ErrInvalidDirection = errors.New("invalid progression direction")
	ErrMissingDateRange = errors.New("missing progression date range")
)

// ProgressionParams describe a theoretical weight progression: starting
// at Start, every following day moves by Increment, either as an
// absolute step or as a percentage of the previous day's value.
type ProgressionParams struct {
	Start      float64
	Increment  float64
	Direction  Direction
	Percentage bool

	// Dates wins over StartDate+Days when both are given.
	Dates     []time.Time
	StartDate time.Time
	Days      int
}

// Progression generates one point per date of the resolved range. The
// value compounds: each step applies to the previously generated value,
// not to Start.
func Progression(params ProgressionParams) ([]Point, error) {
	if params.Direction != DirectionPositive && params.Direction != DirectionNegative {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, params.Direction)
	}

	dates := params.Dates
	if len(dates) == 0 {
		if params.StartDate.IsZero() || params.Days <= 0 {
			return nil, ErrMissingDateRange
		}
		dates = make([]time.Time, 0, params.Days)
		for i := 0; i < params.Days; i++ {
			dates = append(dates, params.StartDate.AddDate(0, 0, i))
		}
	}

	step := params.Increment
	if params.Direction == DirectionNegative {
		step = -step
	}

	points := make([]Point, len(dates))
	value := params.Start
	for i, date := range dates {
		if i > 0 {
			if params.Percentage {
				value *= 1 + step
			} else {
				value += step
			}
		}
		points[i] = Point{Date: date, Value: value}
	}

	return points, nil
}
