package dto

import (
	"strings"
	"voyago/internal/domains/booking/model"
	draftModel "voyago/internal/domains/draft/model"
	pricingModel "voyago/internal/domains/pricing/model"
	"voyago/shared"
	gDto "voyago/shared/dto"
	gModel "voyago/shared/model"
	"voyago/shared/timezone"

	"github.com/google/uuid"
)

// NewModels converts a submitted roster payload and its composed price into
// the booking row plus one traveller row per guest.
func NewModels(user string, sub draftModel.Submission, breakdown pricingModel.Breakdown) (model.Booking, []model.Traveller) {
	now := timezone.Now()
	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	bookingID := uuid.NewString()

	booking := model.Booking{
		ID:                      bookingID,
		Reference:               newReference(bookingID),
		Status:                  model.StatusConfirmed,
		ContactEmail:            sub.Contact.Email,
		ContactPhoneCountryCode: sub.Contact.PhoneCountryCode,
		ContactPhoneNumber:      sub.Contact.PhoneNumber,
		BaseFare:                breakdown.BaseFare,
		Tax:                     breakdown.Tax,
		Subtotal:                breakdown.Subtotal,
		Commission:              breakdown.Commission,
		VAT:                     breakdown.VAT,
		Total:                   breakdown.Total,
		Metadata:                metadata,
	}

	travellers := []model.Traveller{}

	for roomIdx, room := range sub.Rooms {
		for position, traveller := range room.Travellers {
			travellers = append(travellers, model.Traveller{
				ID:        uuid.NewString(),
				BookingID: bookingID,
				RoomIndex: roomIdx,
				Position:  position,
				Title:     traveller.Title,
				FirstName: traveller.FirstName,
				LastName:  traveller.LastName,
				GuestType: string(traveller.Type),
				Metadata:  metadata,
			})
		}
	}

	return booking, travellers
}

// newReference derives a short human-readable booking code from the row id.
func newReference(id string) string {
	compact := strings.ReplaceAll(id, "-", "")

	return "VYG-" + strings.ToUpper(compact[:8])
}

type TravellerResponse struct {
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	GuestType string `json:"guest_type"`
	RoomIndex int    `json:"room_index"`
}

type PriceResponse struct {
	BaseFare   float64 `json:"base_fare"`
	Tax        float64 `json:"tax"`
	Subtotal   float64 `json:"subtotal"`
	Commission float64 `json:"commission"`
	VAT        float64 `json:"vat"`
	Total      float64 `json:"total"`
}

func (r *PriceResponse) fromModel(booking model.Booking) {
	r.BaseFare = pricingModel.Round2(booking.BaseFare)
	r.Tax = pricingModel.Round2(booking.Tax)
	r.Subtotal = pricingModel.Round2(booking.Subtotal)
	r.Commission = pricingModel.Round2(booking.Commission)
	r.VAT = pricingModel.Round2(booking.VAT)
	r.Total = pricingModel.Round2(booking.Total)
}

type ContactResponse struct {
	Email            string `json:"email"`
	PhoneCountryCode string `json:"phone_country_code"`
	PhoneNumber      string `json:"phone_number"`
}

type BookingResponse struct {
	ID           string              `json:"id"`
	Reference    string              `json:"reference"`
	Status       string              `json:"status"`
	Contact      ContactResponse     `json:"contact"`
	Price        PriceResponse       `json:"price"`
	Travellers   []TravellerResponse `json:"travellers,omitempty"`
	ItineraryURL string              `json:"itinerary_url,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking, travellers []model.Traveller) {
	r.ID = booking.ID
	r.Reference = booking.Reference
	r.Status = booking.Status
	r.Contact = ContactResponse{
		Email:            booking.ContactEmail,
		PhoneCountryCode: booking.ContactPhoneCountryCode,
		PhoneNumber:      booking.ContactPhoneNumber,
	}
	r.Price.fromModel(booking)
	r.ItineraryURL = booking.ItineraryURL
	r.Metadata.FromModel(booking.Metadata)

	r.Travellers = make([]TravellerResponse, len(travellers))
	for i, traveller := range travellers {
		r.Travellers[i] = TravellerResponse{
			Title:     traveller.Title,
			FirstName: traveller.FirstName,
			LastName:  traveller.LastName,
			GuestType: traveller.GuestType,
			RoomIndex: traveller.RoomIndex,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, nil)
	}
}
