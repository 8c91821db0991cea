package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func (d *Database) GetOpeningDay(ctx context.Context, openingDayID int) (*OpeningDay, error) {
	var day OpeningDay
	if err := d.db.GetContext(ctx, &day, "SELECT * FROM opening_days WHERE opening_day_id = $1", openingDayID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get opening day: %w", err)
	}

	return &day, nil
}

func (d *Database) GetOpeningDays(ctx context.Context, from time.Time, to time.Time) ([]OpeningDay, error) {
	query := `
		SELECT * FROM opening_days
		WHERE opening_day_open_time >= $1 AND opening_day_open_time <= $2
		ORDER BY opening_day_open_time ASC
	`

	var days []OpeningDay
	if err := d.db.SelectContext(ctx, &days, query, from, to); err != nil {
		return nil, fmt.Errorf("failed to get opening days: %w", err)
	}

	return days, nil
}

func (d *Database) FindOpeningDaysByWindow(ctx context.Context, at time.Time, tolerance time.Duration) ([]OpeningDay, error) {
	query := `
		SELECT * FROM opening_days
		WHERE opening_day_open_time <= $1 AND opening_day_close_time >= $2
		ORDER BY opening_day_open_time ASC
	`

	var days []OpeningDay
	if err := d.db.SelectContext(ctx, &days, query, at.Add(tolerance), at.Add(-tolerance)); err != nil {
		return nil, fmt.Errorf("failed to find opening days by window: %w", err)
	}

	return days, nil
}
