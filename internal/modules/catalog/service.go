package catalog

import (
	"context"

	"fitbook/internal/pkg/timezone"

	"github.com/rs/zerolog"
)

type Service struct {
	classes   ClassRepository
	defaultTZ string
	log       zerolog.Logger
}

func NewService(classes ClassRepository, defaultTZ string, log zerolog.Logger) *Service {
	return &Service{classes: classes, defaultTZ: defaultTZ, log: log}
}

// ListClasses returns every class with its time formatted in tz. The zone
// name is not pre-validated here: a bad name only surfaces once conversion
// is attempted, and the caller treats that as an internal failure. The
// validated variant below is the one that reports bad zones as such.
func (s *Service) ListClasses(ctx context.Context, tz string) ([]ClassSummary, error) {
	if tz == "" {
		tz = s.defaultTZ
	}

	classes, err := s.classes.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("class listing failed")
		return nil, err
	}
	if len(classes) == 0 {
		s.log.Warn().Msg("no fitness classes found")
		return nil, ErrNoClasses
	}

	out := make([]ClassSummary, 0, len(classes))
	for _, cls := range classes {
		zoned, err := timezone.ToZoned(cls.DateTime, tz)
		if err != nil {
			s.log.Error().Err(err).Str("timezone", tz).Msg("class time conversion failed")
			return nil, err
		}
		out = append(out, ClassSummary{
			ID:             cls.ID,
			Name:           cls.Name,
			DateTime:       timezone.FormatDisplay(zoned),
			Instructor:     cls.Instructor,
			AvailableSlots: cls.AvailableSlots,
		})
	}

	s.log.Info().Int("count", len(out)).Str("timezone", tz).Msg("classes listed")
	return out, nil
}

// ListClassesValidated rejects unknown zone names up front with
// ErrInvalidTimezone, then behaves exactly like ListClasses.
func (s *Service) ListClassesValidated(ctx context.Context, tz string) ([]ClassSummary, error) {
	if tz == "" {
		tz = s.defaultTZ
	}
	if !timezone.Valid(tz) {
		s.log.Warn().Str("timezone", tz).Msg("class listing rejected: unknown timezone")
		return nil, ErrInvalidTimezone
	}
	return s.ListClasses(ctx, tz)
}
