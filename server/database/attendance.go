package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (d *Database) GetAttendance(ctx context.Context, memberID int, openingDayID int) (*Attendance, error) {
	var attendance Attendance
	if err := d.db.GetContext(ctx, &attendance, "SELECT * FROM attendance WHERE attendance_member_id = $1 AND attendance_opening_day_id = $2", memberID, openingDayID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &attendance, nil
}

// InsertAttendance writes the record unless one already exists for the
// same (member, opening day) pair. The unique index absorbs concurrent
// duplicates; the return value reports whether a row was actually written.
func (d *Database) InsertAttendance(ctx context.Context, attendance Attendance) (bool, error) {
	query := `
		INSERT INTO attendance (attendance_member_id, attendance_opening_day_id, attendance_check_in_utc)
		VALUES (:attendance_member_id, :attendance_opening_day_id, :attendance_check_in_utc)
		ON CONFLICT (attendance_member_id, attendance_opening_day_id) DO NOTHING
	`

	res, err := d.db.NamedExecContext(ctx, query, attendance)
	if err != nil {
		return false, fmt.Errorf("failed to insert attendance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

func (d *Database) GetOpeningDayAttendees(ctx context.Context, openingDayID int) ([]Attendee, error) {
	query := `
		SELECT m.*, a.attendance_check_in_utc
		FROM attendance a
		JOIN members m ON m.member_id = a.attendance_member_id
		WHERE a.attendance_opening_day_id = $1
		ORDER BY a.attendance_check_in_utc ASC, m.member_name ASC
	`

	var attendees []Attendee
	if err := d.db.SelectContext(ctx, &attendees, query, openingDayID); err != nil {
		return nil, fmt.Errorf("failed to get opening day attendees: %w", err)
	}

	return attendees, nil
}

func (d *Database) GetMemberAttendances(ctx context.Context, memberID int) ([]MemberAttendance, error) {
	query := `
		SELECT o.*, a.attendance_check_in_utc
		FROM attendance a
		JOIN opening_days o ON o.opening_day_id = a.attendance_opening_day_id
		WHERE a.attendance_member_id = $1
		ORDER BY o.opening_day_open_time DESC
	`

	var attendances []MemberAttendance
	if err := d.db.SelectContext(ctx, &attendances, query, memberID); err != nil {
		return nil, fmt.Errorf("failed to get member attendances: %w", err)
	}

	return attendances, nil
}
