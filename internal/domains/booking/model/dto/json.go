package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hotelclient/internal/domains/booking/model"
	"hotelclient/shared"
	"hotelclient/shared/constant"
	"hotelclient/shared/failure"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// bookingRequestWire is the JSON shape exchanged with the booking API.
// Unset fields are left out of the payload.
type bookingRequestWire struct {
	RoomID     *uuid.UUID  `json:"roomId,omitempty"`
	GuestName  *string     `json:"guestName,omitempty"`
	GuestEmail *string     `json:"guestEmail,omitempty"`
	GuestPhone *string     `json:"guestPhone,omitempty"`
	CheckIn    *civil.Date `json:"checkIn,omitempty"`
	CheckOut   *civil.Date `json:"checkOut,omitempty"`
}

func (r BookingRequest) MarshalJSON() ([]byte, error) {
	wire := bookingRequestWire{
		GuestName:  shared.OptionalString(r.guestName),
		GuestEmail: shared.OptionalString(r.guestEmail),
	}

	if r.roomID != uuid.Nil {
		wire.RoomID = &r.roomID
	}

	if phone, ok := r.guestPhone.Get(); ok {
		wire.GuestPhone = &phone
	}

	if !r.checkIn.IsZero() {
		wire.CheckIn = &r.checkIn
	}

	if !r.checkOut.IsZero() {
		wire.CheckOut = &r.checkOut
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes a booking API payload. Missing keys and nulls leave a field
// unset and unknown keys are ignored. A value that cannot be converted to its field
// type fails with *failure.MalformedFieldError.
func (r *BookingRequest) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte(constant.Null)) {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode %s: %w", model.EntityName, err)
	}

	var decoded BookingRequest

	for _, field := range model.Fields {
		text, ok, err := wireString(raw, field)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		if err := decoded.assign(field, text); err != nil {
			return err
		}
	}

	*r = decoded

	return nil
}

func wireString(raw map[string]json.RawMessage, field string) (string, bool, error) {
	value, ok := raw[field]
	if !ok || bytes.Equal(bytes.TrimSpace(value), []byte(constant.Null)) {
		return "", false, nil
	}

	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return "", false, failure.MalformedField(field, string(value), err)
	}

	return text, true, nil
}

func (r *BookingRequest) assign(field, text string) error {
	switch field {
	case model.FieldRoomID:
		roomID, err := uuid.Parse(text)
		if err != nil {
			return failure.MalformedField(field, text, err)
		}

		r.roomID = roomID
	case model.FieldGuestName:
		r.guestName = text
	case model.FieldGuestEmail:
		r.guestEmail = text
	case model.FieldGuestPhone:
		r.guestPhone = mo.Some(text)
	case model.FieldCheckIn, model.FieldCheckOut:
		date, err := civil.ParseDate(text)
		if err != nil {
			return failure.MalformedField(field, text, err)
		}

		if field == model.FieldCheckIn {
			r.checkIn = date
		} else {
			r.checkOut = date
		}
	default:
		return fmt.Errorf("unknown %s field %q", model.EntityName, field)
	}

	return nil
}
