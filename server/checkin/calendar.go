package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/ritrovo/ritrovo/server/database"
)

func NewCalendar(days OpeningDayStore, tolerance time.Duration) *Calendar {
	return &Calendar{
		days:      days,
		tolerance: tolerance,
	}
}

// Calendar maps a point in time to the opening day it belongs to. Matching
// is fuzzy: a day matches when the instant falls inside its window widened
// by the tolerance on both sides, so members scanning slightly before
// opening or after the nominal close still resolve to the right day.
type Calendar struct {
	days      OpeningDayStore
	tolerance time.Duration
}

func (c *Calendar) Resolve(ctx context.Context, at time.Time) (*database.OpeningDay, error) {
	days, err := c.days.FindOpeningDaysByWindow(ctx, at, c.tolerance)
	if err != nil {
		return nil, fmt.Errorf("failed to find opening days: %w", err)
	}

	var best *database.OpeningDay
	var bestDistance time.Duration
	for i := range days {
		day := days[i]
		if !c.matches(at, day) {
			continue
		}

		distance := windowDistance(at, day)
		if best == nil || distance < bestDistance ||
			(distance == bestDistance && day.OpenTime.Before(best.OpenTime)) {
			best = &days[i]
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, ErrEventNotFound
	}

	return best, nil
}

func (c *Calendar) matches(at time.Time, day database.OpeningDay) bool {
	return !at.Before(day.OpenTime.Add(-c.tolerance)) && !at.After(day.CloseTime.Add(c.tolerance))
}

// windowDistance is how far the instant lies outside the day's window,
// zero when it is inside. Used to break ties when the widened windows of
// two adjacent days both match.
func windowDistance(at time.Time, day database.OpeningDay) time.Duration {
	if at.Before(day.OpenTime) {
		return day.OpenTime.Sub(at)
	}
	if at.After(day.CloseTime) {
		return at.Sub(day.CloseTime)
	}
	return 0
}
