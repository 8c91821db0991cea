package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/disgoorg/disgo/discord"
	"golang.org/x/sync/errgroup"

	"github.com/ritrovo/ritrovo/server/auth"
	"github.com/ritrovo/ritrovo/server/checkin"
	"github.com/ritrovo/ritrovo/server/database"
)

// MemberQRCode renders the authenticated member's personal check-in token
// as a QR code for staff to scan.
func (h *handler) MemberQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := auth.GetClaims(r)

	token, err := h.CheckIn.IssueMemberToken(ctx, claims.MemberID)
	if err != nil {
		h.checkInError(ctx, w, err)
		return
	}

	png, err := checkin.RenderQR(token, checkin.MemberQRWidth)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render member qrcode", slog.Any("error", err))
		http.Error(w, "Failed to render QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (h *handler) IsCheckedIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := auth.GetClaims(r)

	attendance, err := h.CheckIn.Status(ctx, claims.MemberID)
	if err != nil {
		h.checkInError(ctx, w, err)
		return
	}

	status := CheckInStatus{}
	if attendance != nil {
		status.CheckedIn = true
		status.CheckInUTC = &attendance.CheckInUTC
	}

	respondJSON(ctx, w, status)
}

func (h *handler) CheckInMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := auth.GetClaims(r)

	token := r.PathValue("token")

	redemption, err := h.CheckIn.Redeem(ctx, token, claims.MemberID)
	if err != nil {
		h.checkInError(ctx, w, err)
		return
	}

	if redemption.Recorded {
		slog.InfoContext(ctx, "member checked in",
			slog.Int("member_id", redemption.MemberID),
			slog.Int("opening_day_id", redemption.OpeningDayID),
			slog.Time("check_in_utc", redemption.CheckInUTC),
		)
		h.Notify.Send(context.WithoutCancel(ctx), fmt.Sprintf("Member `%d` checked in to opening day `%d` at %s",
			redemption.MemberID,
			redemption.OpeningDayID,
			discord.NewTimestamp(discord.TimestampStyleShortDateTime, redemption.CheckInUTC).String(),
		))
	}

	respondJSON(ctx, w, CheckInStatus{
		CheckedIn:  true,
		CheckInUTC: &redemption.CheckInUTC,
	})
}

func (h *handler) EventQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil {
		http.Error(w, "Invalid 'event_id' parameter", http.StatusBadRequest)
		return
	}

	checkInURL, err := h.CheckIn.EventCheckInURL(ctx, eventID)
	if err != nil {
		h.checkInError(ctx, w, err)
		return
	}

	png, err := checkin.RenderQR(checkInURL, checkin.EventQRWidth)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render event qrcode", slog.Any("error", err))
		http.Error(w, "Failed to render QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (h *handler) EventCheckInURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil {
		http.Error(w, "Invalid 'event_id' parameter", http.StatusBadRequest)
		return
	}

	checkInURL, err := h.CheckIn.EventCheckInURL(ctx, eventID)
	if err != nil {
		h.checkInError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, CheckInURL{
		URL: checkInURL,
	})
}

func (h *handler) EventAttendees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.Atoi(r.PathValue("event_id"))
	if err != nil {
		http.Error(w, "Invalid 'event_id' parameter", http.StatusBadRequest)
		return
	}

	var day *database.OpeningDay
	var attendees []database.Attendee
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		day, err = h.db.GetOpeningDay(egCtx, eventID)
		return err
	})
	eg.Go(func() error {
		var err error
		attendees, err = h.db.GetOpeningDayAttendees(egCtx, eventID)
		return err
	})
	if err = eg.Wait(); err != nil {
		slog.ErrorContext(ctx, "failed to get event attendees", slog.Any("error", err))
		http.Error(w, "Failed to get event attendees", http.StatusInternalServerError)
		return
	}

	if day == nil {
		http.Error(w, "No event found", http.StatusNotFound)
		return
	}

	out := EventAttendees{
		Event:     newOpeningDay(*day),
		Attendees: make([]Attendee, 0, len(attendees)),
	}
	for _, attendee := range attendees {
		out.Attendees = append(out.Attendees, Attendee{
			MemberID:   attendee.ID,
			Name:       attendee.Name,
			CheckInUTC: attendee.CheckInUTC,
		})
	}

	respondJSON(ctx, w, out)
}

func newOpeningDay(day database.OpeningDay) OpeningDay {
	return OpeningDay{
		ID:        day.ID,
		Name:      day.Name,
		OpenTime:  day.OpenTime,
		CloseTime: day.CloseTime,
	}
}

func (h *handler) checkInError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkin.ErrInvalidToken), errors.Is(err, checkin.ErrExpiredToken):
		http.Error(w, "Invalid or expired QR code", http.StatusUnauthorized)
	case errors.Is(err, checkin.ErrMemberNotFound):
		http.Error(w, "Member not found", http.StatusNotFound)
	case errors.Is(err, checkin.ErrEventNotFound):
		http.Error(w, "No event found", http.StatusNotFound)
	default:
		slog.ErrorContext(ctx, "check-in request failed", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
