package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelclient/config"
	"hotelclient/internal/domains/booking/model"
	"hotelclient/internal/domains/booking/model/dto"
	"hotelclient/shared/failure"
	"hotelclient/shared/timezone"
	"hotelclient/shared/validator"
	"io"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Booking checks booking request payloads before they are handed to the booking API.
type Booking interface {
	Decode(ctx context.Context, r io.Reader) (dto.BookingRequest, error)
	Validate(ctx context.Context, req dto.BookingRequest) error
	Compare(ctx context.Context, a, b dto.BookingRequest) Comparison
}

// Comparison is the outcome of comparing two booking requests.
type Comparison struct {
	Equal bool   `json:"equal"`
	HashA uint64 `json:"hash_a"`
	HashB uint64 `json:"hash_b"`
}

type serviceImpl struct {
	cfg   *config.Config
	today func() civil.Date
}

func New(cfg *config.Config) Booking {
	return &serviceImpl{
		cfg:   cfg,
		today: timezone.Today,
	}
}

// NewWithClock is New with a fixed source for the current date.
func NewWithClock(cfg *config.Config, today func() civil.Date) Booking {
	return &serviceImpl{
		cfg:   cfg,
		today: today,
	}
}

// bookingRules is the validation view of a request; json tags name fields in messages.
type bookingRules struct {
	RoomID     string     `json:"roomId"     validate:"required,uuid"`
	GuestName  string     `json:"guestName"  validate:"required"`
	GuestEmail string     `json:"guestEmail" validate:"required,email"`
	CheckIn    civil.Date `json:"checkIn"    validate:"required,civildate"`
	CheckOut   civil.Date `json:"checkOut"   validate:"required,civildate"`
}

func newBookingRules(req dto.BookingRequest) bookingRules {
	rules := bookingRules{
		GuestName:  req.GuestName(),
		GuestEmail: req.GuestEmail(),
		CheckIn:    req.CheckIn(),
		CheckOut:   req.CheckOut(),
	}

	if req.RoomID() != uuid.Nil {
		rules.RoomID = req.RoomID().String()
	}

	return rules
}

func (s *serviceImpl) Decode(ctx context.Context, r io.Reader) (req dto.BookingRequest, err error) {
	if err = validator.Decode(r, &req); err != nil {
		log.Error().Err(err).Msg("failed to decode booking request")

		return dto.BookingRequest{}, err // nolint:wrapcheck
	}

	if err = s.Validate(ctx, req); err != nil {
		return dto.BookingRequest{}, err
	}

	return req, nil
}

func (s *serviceImpl) Validate(_ context.Context, req dto.BookingRequest) (err error) {
	defer func() {
		if err != nil {
			log.Error().Err(err).Str("roomId", req.RoomID().String()).Msg("booking request failed validation")
		}
	}()

	rules := newBookingRules(req)

	if err = validator.ValidateStruct(&rules); err != nil {
		return err
	}

	if err = s.validateLengths(req); err != nil {
		return err
	}

	return s.validateStay(req)
}

func (s *serviceImpl) Compare(_ context.Context, a, b dto.BookingRequest) Comparison {
	return Comparison{
		Equal: a.Equal(b),
		HashA: a.Hash(),
		HashB: b.Hash(),
	}
}

func (s *serviceImpl) validateLengths(req dto.BookingRequest) error {
	limits := []struct {
		field string
		value string
		max   int
	}{
		{field: model.FieldGuestName, value: req.GuestName(), max: s.cfg.Booking.GuestNameMax},
		{field: model.FieldGuestEmail, value: req.GuestEmail(), max: s.cfg.Booking.GuestEmailMax},
		{field: model.FieldGuestPhone, value: req.GuestPhone().OrEmpty(), max: s.cfg.Booking.GuestPhoneMax},
	}

	for _, limit := range limits {
		if limit.max <= 0 {
			continue
		}

		if err := validator.ValidateVar(limit.value, fmt.Sprintf("max=%d", limit.max)); err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("%s must be at most %d characters", limit.field, limit.max)) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) validateStay(req dto.BookingRequest) error {
	if req.CheckOut().Before(req.CheckIn()) {
		return failure.BadRequestFromString(fmt.Sprintf("%s must not be before %s", model.FieldCheckOut, model.FieldCheckIn)) // nolint:wrapcheck
	}

	if nights := req.Nights(); nights < s.cfg.Booking.MinNights {
		return failure.BadRequestFromString(fmt.Sprintf("stay must be at least %d nights, got %d", s.cfg.Booking.MinNights, nights)) // nolint:wrapcheck
	}

	if s.cfg.Booking.RejectPastCheckIn {
		if today := s.today(); req.CheckIn().Before(today) {
			return failure.BadRequestFromString(fmt.Sprintf("%s must not be before %s", model.FieldCheckIn, today)) // nolint:wrapcheck
		}
	}

	return nil
}
