package model

const (
	EntityName = "BookingRequest"

	FieldRoomID     = "roomId"
	FieldGuestName  = "guestName"
	FieldGuestEmail = "guestEmail"
	FieldGuestPhone = "guestPhone"
	FieldCheckIn    = "checkIn"
	FieldCheckOut   = "checkOut"
)

// Fields lists the wire field names of a booking request in payload order.
var Fields = []string{
	FieldRoomID,
	FieldGuestName,
	FieldGuestEmail,
	FieldGuestPhone,
	FieldCheckIn,
	FieldCheckOut,
}

// Required reports whether the booking API rejects a payload that omits field.
func Required(field string) bool {
	return field != FieldGuestPhone
}
