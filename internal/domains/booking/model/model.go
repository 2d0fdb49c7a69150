package model

import (
	"voyago/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldReference    = "reference"
	FieldStatus       = "status"
	FieldContactEmail = "contact_email"

	TravellerTableName  = "booking_travellers"
	TravellerEntityName = "booking_traveller"

	TravellerFieldID        = "id"
	TravellerFieldBookingID = "booking_id"
	TravellerFieldRoom      = "room_index"
	TravellerFieldPosition  = "position"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a confirmed reservation row. The price columns keep the full
// composed precision; rounding happens in the response layer.
type Booking struct {
	ID                      string  `db:"id"`
	Reference               string  `db:"reference"`
	Status                  string  `db:"status"`
	ContactEmail            string  `db:"contact_email"`
	ContactPhoneCountryCode string  `db:"contact_phone_country_code"`
	ContactPhoneNumber      string  `db:"contact_phone_number"`
	BaseFare                float64 `db:"base_fare"`
	Tax                     float64 `db:"tax"`
	Subtotal                float64 `db:"subtotal"`
	Commission              float64 `db:"commission"`
	VAT                     float64 `db:"vat"`
	Total                   float64 `db:"total"`
	ItineraryURL            string  `db:"itinerary_url"`
	model.Metadata
}

// Traveller is one guest of a booking, ordered by room and then by position
// within the room (adults before children).
type Traveller struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	RoomIndex int    `db:"room_index"`
	Position  int    `db:"position"`
	Title     string `db:"title"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	GuestType string `db:"guest_type"`
	model.Metadata
}
