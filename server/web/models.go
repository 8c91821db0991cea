package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type CheckInStatus struct {
	CheckedIn  bool       `json:"checked_in"`
	CheckInUTC *time.Time `json:"check_in_utc,omitempty"`
}

type CheckInURL struct {
	URL string `json:"url"`
}

type OpeningDay struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	OpenTime  time.Time `json:"open_time_utc"`
	CloseTime time.Time `json:"close_time_utc"`
}

type Attendee struct {
	MemberID   int       `json:"member_id"`
	Name       string    `json:"name"`
	CheckInUTC time.Time `json:"check_in_utc"`
}

type EventAttendees struct {
	Event     OpeningDay `json:"event"`
	Attendees []Attendee `json:"attendees"`
}

type MemberAttendance struct {
	OpeningDay OpeningDay `json:"opening_day"`
	CheckInUTC time.Time  `json:"check_in_utc"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", slog.Any("error", err))
	}
}
