package database

import (
	"time"
)

type Member struct {
	ID        int       `db:"member_id"`
	Name      string    `db:"member_name"`
	Email     string    `db:"member_email"`
	Admin     bool      `db:"member_admin"`
	CreatedAt time.Time `db:"member_created_at"`
}

type OpeningDay struct {
	ID        int       `db:"opening_day_id"`
	Name      string    `db:"opening_day_name"`
	OpenTime  time.Time `db:"opening_day_open_time"`
	CloseTime time.Time `db:"opening_day_close_time"`
}

type Attendance struct {
	ID           int       `db:"attendance_id"`
	MemberID     int       `db:"attendance_member_id"`
	OpeningDayID int       `db:"attendance_opening_day_id"`
	CheckInUTC   time.Time `db:"attendance_check_in_utc"`
}

type Attendee struct {
	Member
	CheckInUTC time.Time `db:"attendance_check_in_utc"`
}

type MemberAttendance struct {
	OpeningDay
	CheckInUTC time.Time `db:"attendance_check_in_utc"`
}
