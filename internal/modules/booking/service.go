package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"fitbook/internal/domain"
	"fitbook/internal/metrics"
	"fitbook/internal/pkg/timezone"
	"fitbook/internal/pkg/validator"
	"fitbook/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	nameRe  = regexp.MustCompile(`^[A-Za-z ]{2,}$`)
)

type Service struct {
	bookings  BookingRepository
	classes   ClassRepository
	defaultTZ string
	log       zerolog.Logger
	metrics   *metrics.Metrics
}

func NewService(
	bookings BookingRepository,
	classes ClassRepository,
	defaultTZ string,
	log zerolog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		bookings:  bookings,
		classes:   classes,
		defaultTZ: defaultTZ,
		log:       log,
		metrics:   m,
	}
}

// CreateResult carries the committed booking plus the UTC instant the
// client's requested local time resolved to, and the timezone used.
type CreateResult struct {
	Booking      *domain.Booking
	ClassTimeUTC time.Time
	Timezone     string
}

// Create runs the booking pipeline: field presence, email and name shape,
// date format, class lookup, capacity, timezone conversion, same-day check,
// then the atomic slot-claim-and-insert. Single-shot, no retries.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*CreateResult, error) {
	if fields := validator.Missing(req); len(fields) > 0 {
		s.log.Warn().Strs("fields", fields).Msg("booking rejected: missing fields")
		s.reject("missing_fields")
		return nil, ErrMissingFields
	}

	if !emailRe.MatchString(req.ClientEmail) {
		s.log.Warn().Str("email", req.ClientEmail).Msg("booking rejected: invalid email")
		s.reject("invalid_email")
		return nil, ErrInvalidEmail
	}

	if !nameRe.MatchString(strings.TrimSpace(req.ClientName)) {
		s.log.Warn().Str("name", req.ClientName).Msg("booking rejected: invalid client name")
		s.reject("invalid_name")
		return nil, ErrInvalidName
	}

	local, err := timezone.ParseLocal(req.LocalTime)
	if err != nil {
		s.log.Warn().Str("local_time", req.LocalTime).Msg("booking rejected: bad date format")
		s.reject("invalid_date_format")
		return nil, ErrInvalidDateFormat
	}

	cls, err := s.classes.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn().Int64("class_id", req.ClassID).Msg("booking rejected: class not found")
			s.reject("class_not_found")
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if cls.AvailableSlots <= 0 {
		s.log.Warn().Int64("class_id", cls.ID).Msg("booking rejected: class full")
		s.reject("no_slots")
		return nil, ErrNoSlotsAvailable
	}

	tz := req.Timezone
	if tz == "" {
		tz = s.defaultTZ
	}

	utc, err := timezone.ToUTC(local, tz)
	if err != nil {
		s.log.Warn().Str("timezone", tz).Msg("booking rejected: unknown timezone")
		s.reject("invalid_timezone")
		return nil, ErrInvalidTimezone
	}

	// Coarse same-day check against the class's stored UTC date, not a
	// time-of-day match. Preserved from the original contract.
	if !sameUTCDate(utc, cls.DateTime) {
		s.log.Warn().
			Time("requested_utc", utc).
			Time("class_utc", cls.DateTime).
			Msg("booking rejected: date mismatch")
		s.reject("date_mismatch")
		return nil, ErrDateMismatch
	}

	b := &domain.Booking{
		ClassID:     cls.ID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// The conditional decrement lost a race for the last slot, either
		// reported directly or via the Postgres CHECK on available_slots.
		var pgErr *pgconn.PgError
		if errors.Is(err, repository.ErrSlotsExhausted) ||
			(errors.As(err, &pgErr) && pgErr.Code == "23514") {
			s.log.Warn().Int64("class_id", cls.ID).Msg("booking rejected: slots exhausted at commit")
			s.reject("no_slots")
			return nil, ErrNoSlotsAvailable
		}
		s.log.Error().Err(err).Int64("class_id", cls.ID).Msg("booking insert failed")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.WithLabelValues(cls.Name).Inc()
	}
	s.log.Info().
		Int64("booking_id", b.ID).
		Int64("class_id", cls.ID).
		Str("email", b.ClientEmail).
		Time("requested_utc", utc).
		Msg("booking created")

	return &CreateResult{Booking: b, ClassTimeUTC: utc, Timezone: tz}, nil
}

// ListByEmail returns a client's bookings with class details, times
// formatted in tz. An empty result is the non-fatal ErrNoBookings.
func (s *Service) ListByEmail(ctx context.Context, email, tz string) ([]ClientBooking, error) {
	rows, err := s.listDetails(ctx, &email, tz)
	if err != nil {
		return nil, err
	}

	out := make([]ClientBooking, 0, len(rows))
	for _, r := range rows {
		out = append(out, ClientBooking{
			ID:         r.ID,
			ClassName:  r.ClassName,
			DateTime:   r.DateTime,
			Instructor: r.Instructor,
		})
	}
	return out, nil
}

// ListAll returns every booking in the system, including client identity.
func (s *Service) ListAll(ctx context.Context, tz string) ([]AdminBooking, error) {
	rows, err := s.listDetails(ctx, nil, tz)
	if err != nil {
		return nil, err
	}

	out := make([]AdminBooking, 0, len(rows))
	for _, r := range rows {
		out = append(out, AdminBooking{
			ID:          r.ID,
			ClassName:   r.ClassName,
			DateTime:    r.DateTime,
			Instructor:  r.Instructor,
			ClientName:  r.ClientName,
			ClientEmail: r.ClientEmail,
		})
	}
	return out, nil
}

type bookingRow struct {
	ID          int64
	ClassName   string
	DateTime    string
	Instructor  string
	ClientName  string
	ClientEmail string
}

func (s *Service) listDetails(ctx context.Context, email *string, tz string) ([]bookingRow, error) {
	if tz == "" {
		tz = s.defaultTZ
	}
	if !timezone.Valid(tz) {
		return nil, ErrInvalidTimezone
	}

	var (
		details []repository.BookingDetails
		err     error
	)
	if email != nil {
		details, err = s.bookings.GetByEmailWithClass(ctx, *email)
	} else {
		details, err = s.bookings.GetAllWithClass(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNoBookings
	}

	rows := make([]bookingRow, 0, len(details))
	for _, d := range details {
		zoned, err := timezone.ToZoned(d.DateTime, tz)
		if err != nil {
			return nil, err
		}
		rows = append(rows, bookingRow{
			ID:          d.ID,
			ClassName:   d.ClassName,
			DateTime:    timezone.FormatDisplay(zoned),
			Instructor:  d.Instructor,
			ClientName:  d.ClientName,
			ClientEmail: d.ClientEmail,
		})
	}
	return rows, nil
}

func (s *Service) reject(reason string) {
	if s.metrics != nil {
		s.metrics.BookingsRejected.WithLabelValues(reason).Inc()
	}
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
