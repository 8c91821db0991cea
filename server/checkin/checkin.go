package checkin

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ritrovo/ritrovo/server/database"
)

type MemberStore interface {
	MemberExists(ctx context.Context, memberID int) (bool, error)
}

type OpeningDayStore interface {
	// GetOpeningDay returns nil when no opening day with the given id exists.
	GetOpeningDay(ctx context.Context, openingDayID int) (*database.OpeningDay, error)
	FindOpeningDaysByWindow(ctx context.Context, at time.Time, tolerance time.Duration) ([]database.OpeningDay, error)
}

type AttendanceStore interface {
	// GetAttendance returns nil when the member has no record for the day.
	GetAttendance(ctx context.Context, memberID int, openingDayID int) (*database.Attendance, error)
	// InsertAttendance reports whether a new record was written. A record
	// already present for the same (member, opening day) pair is not an
	// error; the storage unique index absorbs the race between two
	// concurrent check-ins.
	InsertAttendance(ctx context.Context, attendance database.Attendance) (bool, error)
}

// Redemption is the outcome of a successful redeem. Recorded is false when
// the member had already checked in and the call was absorbed as a replay.
type Redemption struct {
	MemberID     int
	OpeningDayID int
	CheckInUTC   time.Time
	Recorded     bool
}

func New(cfg Config, members MemberStore, days OpeningDayStore, attendance AttendanceStore) *Service {
	return &Service{
		cfg:        cfg,
		members:    members,
		days:       days,
		attendance: attendance,
		codec:      NewTokenCodec([]byte(cfg.Secret)),
		calendar:   NewCalendar(days, time.Duration(cfg.Tolerance)),
		now:        time.Now,
	}
}

// Service issues and redeems check-in tokens. A (member, opening day) pair
// moves from no token to token issued to redeemed; nothing is persisted
// before redemption, so an unredeemed token simply expires.
type Service struct {
	cfg        Config
	members    MemberStore
	days       OpeningDayStore
	attendance AttendanceStore
	codec      *TokenCodec
	calendar   *Calendar

	now func() time.Time
}

// IssueMemberToken creates a token a member renders as their personal QR
// code. The issuance time is embedded in the token and later becomes the
// recorded check-in time, so the record reflects when the member scanned,
// not when staff verified.
func (s *Service) IssueMemberToken(ctx context.Context, memberID int) (string, error) {
	exists, err := s.members.MemberExists(ctx, memberID)
	if err != nil {
		return "", fmt.Errorf("failed to check member: %w", err)
	}
	if !exists {
		return "", ErrMemberNotFound
	}

	return s.codec.IssueMember(memberID, s.now(), time.Duration(s.cfg.MemberTokenTTL))
}

// IssueEventToken creates a token for the venue-displayed QR code of an
// opening day.
func (s *Service) IssueEventToken(ctx context.Context, eventID int) (string, error) {
	day, err := s.days.GetOpeningDay(ctx, eventID)
	if err != nil {
		return "", fmt.Errorf("failed to get opening day: %w", err)
	}
	if day == nil {
		return "", ErrEventNotFound
	}

	return s.codec.IssueEvent(day.ID, s.now().Add(time.Duration(s.cfg.EventTokenTTL)))
}

// EventCheckInURL wraps an event token into the frontend URL members land
// on after scanning the venue QR code.
func (s *Service) EventCheckInURL(ctx context.Context, eventID int) (string, error) {
	token, err := s.IssueEventToken(ctx, eventID)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(s.cfg.FrontendURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse frontend URL: %w", err)
	}
	u.Path = "/profile"
	u.RawQuery = url.Values{"check-in": {token}}.Encode()

	return u.String(), nil
}

// Redeem verifies a token and records attendance. Member tokens carry the
// acting member and resolve their opening day from the issuance time;
// event tokens name the opening day directly and the acting member is the
// authenticated caller. Redeeming twice for the same pair succeeds without
// a second record.
func (s *Service) Redeem(ctx context.Context, token string, callerMemberID int) (*Redemption, error) {
	payload, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}

	memberID := callerMemberID
	if payload.Kind == TokenKindMember {
		memberID = payload.SubjectID
	}

	exists, err := s.members.MemberExists(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to check member: %w", err)
	}
	if !exists {
		return nil, ErrMemberNotFound
	}

	var day *database.OpeningDay
	var checkInAt time.Time
	switch payload.Kind {
	case TokenKindEvent:
		day, err = s.days.GetOpeningDay(ctx, payload.SubjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to get opening day: %w", err)
		}
		if day == nil {
			return nil, ErrEventNotFound
		}
		checkInAt = s.now()
	default:
		day, err = s.calendar.Resolve(ctx, payload.IssuedAt)
		if err != nil {
			return nil, err
		}
		checkInAt = payload.IssuedAt
	}

	existing, err := s.attendance.GetAttendance(ctx, memberID, day.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	if existing != nil {
		return &Redemption{
			MemberID:     memberID,
			OpeningDayID: day.ID,
			CheckInUTC:   existing.CheckInUTC,
			Recorded:     false,
		}, nil
	}

	recorded, err := s.attendance.InsertAttendance(ctx, database.Attendance{
		MemberID:     memberID,
		OpeningDayID: day.ID,
		CheckInUTC:   checkInAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert attendance: %w", err)
	}

	return &Redemption{
		MemberID:     memberID,
		OpeningDayID: day.ID,
		CheckInUTC:   checkInAt,
		Recorded:     recorded,
	}, nil
}

// Status reports whether the member has checked in to the opening day
// currently resolvable from the clock. The returned attendance is nil when
// the member has not checked in yet.
func (s *Service) Status(ctx context.Context, memberID int) (*database.Attendance, error) {
	day, err := s.calendar.Resolve(ctx, s.now())
	if err != nil {
		return nil, err
	}

	attendance, err := s.attendance.GetAttendance(ctx, memberID, day.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return attendance, nil
}
