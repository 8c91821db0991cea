package web

import (
	"log/slog"
	"net/http"

	"github.com/ritrovo/ritrovo/server/auth"
)

// MemberAttendances lists the opening days the authenticated member
// attended, most recent first.
func (h *handler) MemberAttendances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := auth.GetClaims(r)

	attendances, err := h.db.GetMemberAttendances(ctx, claims.MemberID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get member attendances", slog.Any("error", err))
		http.Error(w, "Failed to get attendances", http.StatusInternalServerError)
		return
	}

	out := make([]MemberAttendance, 0, len(attendances))
	for _, attendance := range attendances {
		out = append(out, MemberAttendance{
			OpeningDay: newOpeningDay(attendance.OpeningDay),
			CheckInUTC: attendance.CheckInUTC,
		})
	}

	respondJSON(ctx, w, out)
}
