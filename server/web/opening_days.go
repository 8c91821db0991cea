package web

import (
	"log/slog"
	"net/http"
	"time"
)

// OpeningDays lists the sessions around the current date, one month back
// and two months ahead.
func (h *handler) OpeningDays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	now := time.Now()
	days, err := h.db.GetOpeningDays(ctx, now.AddDate(0, -1, 0), now.AddDate(0, 2, 0))
	if err != nil {
		slog.ErrorContext(ctx, "failed to get opening days", slog.Any("error", err))
		http.Error(w, "Failed to get opening days", http.StatusInternalServerError)
		return
	}

	out := make([]OpeningDay, 0, len(days))
	for _, day := range days {
		out = append(out, newOpeningDay(day))
	}

	respondJSON(ctx, w, out)
}
