package weight

import (
	"errors"
	"math"
	"sort"
	"time"
)

// ErrNotEnoughData means the series does not span enough weeks yet to
// compute a week over week change.
var ErrNotEnoughData = errors.New("not enough data points")

// GoalRatePerDay is the benchmark slope: one kilo lost per week.
const GoalRatePerDay = 1.0 / 7

// weekEndFor maps a date to the Sunday ending its calendar week.
func weekEndFor(d time.Time) time.Time {
	return d.AddDate(0, 0, (7-int(d.Weekday()))%7)
}

// WeeklyAverages buckets the series by calendar week and averages the
// recorded weights per bucket. Gaps are skipped; weeks holding only
// gaps produce no point. The result is ordered by week end date.
func WeeklyAverages(s Series) []Point {
	week2weights := make(map[time.Time][]float64)
	for _, e := range s {
		if !e.HasWeight() {
			continue
		}
		weekEnd := weekEndFor(e.Date)
		week2weights[weekEnd] = append(week2weights[weekEnd], *e.Weight)
	}

	points := make([]Point, 0, len(week2weights))
	for weekEnd, weights := range week2weights {
		var sum float64
		for _, w := range weights {
			sum += w
		}
		points = append(points, Point{
			Date:  weekEnd,
			Value: sum / float64(len(weights)),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// WeeklyChange is the difference between the two most recent weekly
// averages, rounded to two decimals. With fewer than two weekly buckets
// it returns ErrNotEnoughData.
func WeeklyChange(s Series) (float64, error) {
	weekly := WeeklyAverages(s)
	if len(weekly) < 2 {
		return 0, ErrNotEnoughData
	}

	latest := weekly[len(weekly)-1].Value
	previous := weekly[len(weekly)-2].Value
	return math.Round((latest-previous)*100) / 100, nil
}

// Benchmark is the goal progression laid over the series' own dates:
// seeded with the first recorded weight, losing GoalRatePerDay kilos a
// day. An all-gap series yields ErrNoData.
func Benchmark(s Series) ([]Point, error) {
	first, ok := s.FirstRecorded()
	if !ok {
		return nil, ErrNoData
	}

	return Progression(ProgressionParams{
		Start:     *first.Weight,
		Increment: GoalRatePerDay,
		Direction: DirectionNegative,
		Dates:     s.Dates(),
	})
}
