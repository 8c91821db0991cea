package web

import (
	"context"
	"net/http"
	"path"
	"time"

	"golang.org/x/time/rate"

	"github.com/ritrovo/ritrovo/server"
	"github.com/ritrovo/ritrovo/server/database"
)

// Store is the subset of the database the handlers read directly, outside
// the check-in service.
type Store interface {
	GetOpeningDay(ctx context.Context, openingDayID int) (*database.OpeningDay, error)
	GetOpeningDays(ctx context.Context, from time.Time, to time.Time) ([]database.OpeningDay, error)
	GetOpeningDayAttendees(ctx context.Context, openingDayID int) ([]database.Attendee, error)
	GetMemberAttendances(ctx context.Context, memberID int) ([]database.MemberAttendance, error)
}

type handler struct {
	*server.Server

	db        Store
	qrLimiter *rate.Limiter
}

func Routes(srv *server.Server) http.Handler {
	return routes(&handler{
		Server:    srv,
		db:        srv.DB,
		qrLimiter: rate.NewLimiter(rate.Every(time.Duration(srv.Cfg.Attendance.QREvery)), srv.Cfg.Attendance.QRBurst),
	})
}

func routes(h *handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /attendance/qr-code", h.rateLimit(h.MemberQRCode))
	mux.HandleFunc("GET /attendance/is-checked-in", h.IsCheckedIn)
	mux.HandleFunc("POST /attendance/check-in/{token}", h.CheckInMember)

	mux.HandleFunc("GET /attendance/event-qr/{event_id}", h.admin(h.EventQRCode))
	mux.HandleFunc("GET /attendance/event-checkin-url/{event_id}", h.admin(h.EventCheckInURL))
	mux.HandleFunc("GET /attendance/event/{event_id}", h.admin(h.EventAttendees))

	mux.HandleFunc("GET /opening-days", h.OpeningDays)
	mux.HandleFunc("GET /members/me/attendances", h.MemberAttendances)

	mux.HandleFunc("/", h.NotFound)

	return requestLog(cleanPath(h.auth(mux)))
}

func (h *handler) NotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not found", http.StatusNotFound)
}

func cleanPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = path.Clean(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
