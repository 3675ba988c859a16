package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	bookingserrors "dreamshoots/internal/bookings/errors"
	"dreamshoots/internal/bookings/export"
	"dreamshoots/internal/bookings/query"
	"dreamshoots/internal/bookings/repository"
	"dreamshoots/internal/bookings/validator"
	"dreamshoots/internal/events"
	"dreamshoots/internal/metrics"
	"dreamshoots/pkg/config"
	apperrors "dreamshoots/pkg/errors"
	"dreamshoots/pkg/model"
	"dreamshoots/pkg/sanitizer"

	"github.com/google/uuid"
)

// maxStatusAttempts bounds re-reads when a concurrent update moves the status
// between the transition check and the write.
const maxStatusAttempts = 3

type BookingService interface {
	Create(ctx context.Context, input *model.BookingCreate) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, filter query.Filter) (*model.BookingList, error)
	Summary(ctx context.Context) (model.BookingSummary, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, filter query.Filter, format string) (*ExportFile, error)
}

type ExportFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	events    events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &bookingService{
		repo:      repo,
		validator: validator,
		events:    publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *bookingService) Create(ctx context.Context, input *model.BookingCreate) (*model.Booking, error) {
	if input == nil {
		return nil, apperrors.InvalidInput("Request body is required")
	}

	s.sanitize(input)
	if err := s.validator.Validate(input); err != nil {
		return nil, s.validationError("Booking validation failed", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Internal("Failed to generate booking ID", err)
	}

	booking := &model.Booking{
		ID:              id.String(),
		Name:            input.Name,
		Phone:           input.Phone,
		PreferredDate:   input.PreferredDate,
		PreferredTime:   input.PreferredTime,
		EventType:       input.EventType,
		Location:        input.Location,
		SelectedPackage: input.SelectedPackage,
		ImportantInfo:   input.ImportantInfo,
		Status:          model.BookingStatusPending,
		CreatedAt:       s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "id", booking.ID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"preferred_date", booking.PreferredDate,
		"event_type", booking.EventType,
	)
	metrics.IncBookingCreated()
	s.events.Publish(ctx, events.NewBookingCreated(booking))
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.storeError(err, id, "Failed to retrieve booking")
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, filter query.Filter) (*model.BookingList, error) {
	all, err := s.findAll(ctx)
	if err != nil {
		return nil, err
	}

	return &model.BookingList{
		Bookings: query.Apply(all, filter),
		Summary:  query.Summarize(all),
	}, nil
}

func (s *bookingService) Summary(ctx context.Context) (model.BookingSummary, error) {
	all, err := s.findAll(ctx)
	if err != nil {
		return model.BookingSummary{}, err
	}
	return query.Summarize(all), nil
}

// UpdateStatus moves a booking to status. Re-applying the current status
// succeeds without a write.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	update := &model.BookingStatusUpdate{Status: strings.TrimSpace(status)}
	if err := s.validator.ValidateStatusUpdate(update); err != nil {
		return nil, s.validationError("Invalid status update", err)
	}
	target, err := model.ParseBookingStatus(update.Status)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid booking status")
	}

	for attempt := 1; ; attempt++ {
		updated, from, err := s.applyStatus(ctx, id, target)
		if errors.Is(err, bookingserrors.ErrStatusChanged) {
			if attempt < maxStatusAttempts {
				continue
			}
			s.cfg.Log.Warn("Booking status kept changing during update", "id", id, "to", target, "attempts", attempt)
			return nil, apperrors.Conflict("Booking status changed during update, please retry")
		}
		if err != nil {
			return nil, err
		}
		if from == target {
			return updated, nil
		}

		s.cfg.Log.Info("Booking status updated",
			"id", id,
			"from", from,
			"to", target,
		)
		metrics.IncStatusTransition(from.String(), target.String())
		s.events.Publish(ctx, events.NewBookingStatusChanged(id, from, target))
		return updated, nil
	}
}

// applyStatus checks the transition against the current record and writes it
// only if the status is still the one that was checked.
func (s *bookingService) applyStatus(ctx context.Context, id string, target model.BookingStatus) (*model.Booking, model.BookingStatus, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", s.storeError(err, id, "Failed to retrieve booking")
	}

	from := existing.Status
	if from == target {
		s.cfg.Log.Debug("Booking status unchanged", "id", id, "status", target)
		return existing, from, nil
	}

	if s.cfg.StrictStatusTransitions && !model.CanTransition(from, target) {
		s.cfg.Log.Warn("Rejected booking status transition", "id", id, "from", from, "to", target)
		return nil, from, apperrors.Validation("Invalid status transition", map[string]any{
			"error": bookingserrors.ErrInvalidTransition.Error(),
			"from":  from,
			"to":    target,
		})
	}

	updated, err := s.repo.UpdateStatus(ctx, id, from, target)
	if errors.Is(err, bookingserrors.ErrStatusChanged) {
		return nil, from, err
	}
	if err != nil {
		return nil, from, s.storeError(err, id, "Failed to update booking status")
	}
	return updated, from, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storeError(err, id, "Failed to delete booking")
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	metrics.IncBookingDeleted()
	s.events.Publish(ctx, events.NewBookingDeleted(id))
	return nil
}

func (s *bookingService) Export(ctx context.Context, filter query.Filter, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = export.FormatCSV
	}
	if format != export.FormatCSV && format != export.FormatXLSX {
		return nil, apperrors.Validation("Invalid export format", map[string]any{
			"fields": validator.ValidationErrors{{
				Field:   "format",
				Message: "format must be one of: csv, xlsx",
			}},
		})
	}

	all, err := s.findAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings := query.Apply(all, filter)

	var buf bytes.Buffer
	switch format {
	case export.FormatXLSX:
		err = export.WriteXLSX(&buf, bookings, s.cfg.ExportLocation)
	default:
		err = export.WriteCSV(&buf, bookings, s.cfg.ExportLocation)
	}
	if err != nil {
		s.cfg.Log.Error("Failed to export bookings", "format", format, "error", err)
		return nil, apperrors.Internal("Failed to export bookings", err)
	}

	s.cfg.Log.Info("Bookings exported", "format", format, "count", len(bookings))
	return &ExportFile{
		Data:        buf.Bytes(),
		ContentType: export.ContentType(format),
		Filename:    export.Filename(format, s.now().In(s.location())),
	}, nil
}

// --- Helpers ---

func (s *bookingService) findAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) sanitize(b *model.BookingCreate) {
	b.Name = sanitizer.NormalizeName(b.Name)
	b.PreferredDate = sanitizer.NormalizeText(b.PreferredDate)
	b.PreferredTime = sanitizer.NormalizeText(b.PreferredTime)
	b.EventType = sanitizer.NormalizeName(b.EventType)
	b.Location = sanitizer.NormalizeName(b.Location)
	b.SelectedPackage = sanitizer.NormalizeName(b.SelectedPackage)
	b.ImportantInfo = sanitizer.NormalizeText(b.ImportantInfo)

	phone := sanitizer.NormalizeText(b.Phone)
	if normalized := sanitizer.NormalizePhone(phone); normalized != "" {
		phone = normalized
	}
	b.Phone = phone
}

func (s *bookingService) validationError(message string, err error) error {
	s.cfg.Log.Warn(message, "error", err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation(message, map[string]any{"fields": verrs})
	}
	return apperrors.Validation(message, map[string]any{"error": err.Error()})
}

func (s *bookingService) storeError(err error, id, message string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	s.cfg.Log.Error(message, "id", id, "error", err)
	return apperrors.Internal(message, err)
}

func (s *bookingService) location() *time.Location {
	if s.cfg.ExportLocation == nil {
		return time.UTC
	}
	return s.cfg.ExportLocation
}
