package dto

import (
	"fmt"
	"hotelclient/internal/domains/booking/model"
	"hotelclient/shared"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// BookingRequest is the payload of a hotel room booking submission.
// The zero value has every field unset. Setters mutate in place; the With* methods
// return a modified copy and leave the receiver alone.
type BookingRequest struct {
	roomID     uuid.UUID
	guestName  string
	guestEmail string
	guestPhone mo.Option[string]
	checkIn    civil.Date
	checkOut   civil.Date
}

// NewBookingRequest returns a request with every required field set and no guest phone.
func NewBookingRequest(roomID uuid.UUID, guestName, guestEmail string, checkIn, checkOut civil.Date) BookingRequest {
	return BookingRequest{
		roomID:     roomID,
		guestName:  guestName,
		guestEmail: guestEmail,
		checkIn:    checkIn,
		checkOut:   checkOut,
	}
}

func (r BookingRequest) RoomID() uuid.UUID {
	return r.roomID
}

func (r BookingRequest) GuestName() string {
	return r.guestName
}

func (r BookingRequest) GuestEmail() string {
	return r.guestEmail
}

func (r BookingRequest) GuestPhone() mo.Option[string] {
	return r.guestPhone
}

func (r BookingRequest) CheckIn() civil.Date {
	return r.checkIn
}

func (r BookingRequest) CheckOut() civil.Date {
	return r.checkOut
}

func (r *BookingRequest) SetRoomID(roomID uuid.UUID) {
	r.roomID = roomID
}

func (r *BookingRequest) SetGuestName(guestName string) {
	r.guestName = guestName
}

func (r *BookingRequest) SetGuestEmail(guestEmail string) {
	r.guestEmail = guestEmail
}

// SetGuestPhone stores phone as given; mo.None clears it.
func (r *BookingRequest) SetGuestPhone(phone mo.Option[string]) {
	r.guestPhone = phone
}

func (r *BookingRequest) SetCheckIn(checkIn civil.Date) {
	r.checkIn = checkIn
}

func (r *BookingRequest) SetCheckOut(checkOut civil.Date) {
	r.checkOut = checkOut
}

func (r BookingRequest) WithRoomID(roomID uuid.UUID) BookingRequest {
	r.roomID = roomID
	return r
}

func (r BookingRequest) WithGuestName(guestName string) BookingRequest {
	r.guestName = guestName
	return r
}

func (r BookingRequest) WithGuestEmail(guestEmail string) BookingRequest {
	r.guestEmail = guestEmail
	return r
}

func (r BookingRequest) WithGuestPhone(phone mo.Option[string]) BookingRequest {
	r.guestPhone = phone
	return r
}

func (r BookingRequest) WithCheckIn(checkIn civil.Date) BookingRequest {
	r.checkIn = checkIn
	return r
}

func (r BookingRequest) WithCheckOut(checkOut civil.Date) BookingRequest {
	r.checkOut = checkOut
	return r
}

// Equal reports whether every field of r and other holds the same value.
// Two absent guest phones are equal; absent and present never are.
func (r BookingRequest) Equal(other BookingRequest) bool {
	phone, hasPhone := r.guestPhone.Get()
	otherPhone, otherHasPhone := other.guestPhone.Get()

	return r.roomID == other.roomID &&
		r.guestName == other.guestName &&
		r.guestEmail == other.guestEmail &&
		hasPhone == otherHasPhone && phone == otherPhone &&
		r.checkIn == other.checkIn &&
		r.checkOut == other.checkOut
}

const (
	hashAbsent    byte = 0x00
	hashPresent   byte = 0x01
	hashSeparator byte = 0xff
)

// Hash returns a 64-bit xxhash over all six fields. Equal requests hash equally.
func (r BookingRequest) Hash() uint64 {
	digest := xxhash.New()

	for _, field := range r.fields() {
		_, _ = digest.WriteString(field.name)

		if field.present {
			_, _ = digest.Write([]byte{hashPresent})
			_, _ = digest.WriteString(field.text)
		} else {
			_, _ = digest.Write([]byte{hashAbsent})
		}

		_, _ = digest.Write([]byte{hashSeparator})
	}

	return digest.Sum64()
}

// String renders a multi-line debug block listing every field, null when unset.
// It is not a serialization format.
func (r BookingRequest) String() string {
	var builder strings.Builder

	builder.WriteString("class " + model.EntityName + " {\n")

	for _, field := range r.fields() {
		fmt.Fprintf(&builder, "    %s: %s\n", field.name, shared.ToIndentedString(field.text, field.present))
	}

	builder.WriteString("}")

	return builder.String()
}

// Nights returns the number of days between check-in and check-out, negative when
// check-out comes first and 0 while either date is unset.
func (r BookingRequest) Nights() int {
	if r.checkIn.IsZero() || r.checkOut.IsZero() {
		return 0
	}

	return r.checkOut.DaysSince(r.checkIn)
}

// Complete reports whether every field the booking API requires is set.
func (r BookingRequest) Complete() bool {
	for _, field := range r.fields() {
		if model.Required(field.name) && !field.present {
			return false
		}
	}

	return true
}

type fieldValue struct {
	name    string
	text    string
	present bool
}

func (r BookingRequest) fields() [6]fieldValue {
	phone, hasPhone := r.guestPhone.Get()

	return [6]fieldValue{
		{name: model.FieldRoomID, text: r.roomID.String(), present: r.roomID != uuid.Nil},
		{name: model.FieldGuestName, text: r.guestName, present: r.guestName != ""},
		{name: model.FieldGuestEmail, text: r.guestEmail, present: r.guestEmail != ""},
		{name: model.FieldGuestPhone, text: phone, present: hasPhone},
		{name: model.FieldCheckIn, text: r.checkIn.String(), present: !r.checkIn.IsZero()},
		{name: model.FieldCheckOut, text: r.checkOut.String(), present: !r.checkOut.IsZero()},
	}
}
