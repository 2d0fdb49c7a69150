package dto

import (
	"time"
	bookingDto "voyago/internal/domains/booking/model/dto"
	"voyago/internal/domains/draft/model"
	"voyago/shared/timezone"

	"github.com/google/uuid"
)

type RoomOccupancyRequest struct {
	Adults   int `json:"adults"   validate:"required,min=1,max=4"`
	Children int `json:"children" validate:"min=0,max=3"`
}

type CreateDraftRequest struct {
	Rooms    []RoomOccupancyRequest `json:"rooms"     validate:"required,min=1,max=6,dive"`
	BaseFare float64                `json:"base_fare" validate:"gte=0"`
	Tax      float64                `json:"tax"       validate:"gte=0"`
}

func (c *CreateDraftRequest) ToModel(user string) model.Draft {
	occupancies := make([]model.Occupancy, len(c.Rooms))
	for i, room := range c.Rooms {
		occupancies[i] = model.Occupancy{Adults: room.Adults, Children: room.Children}
	}

	return model.Draft{
		ID:        uuid.NewString(),
		UserID:    user,
		Roster:    model.NewRoster(occupancies),
		BaseFare:  c.BaseFare,
		Tax:       c.Tax,
		CreatedAt: timezone.Now(),
	}
}

type UpdateGuestRequest struct {
	Room      int    `json:"room"       validate:"min=0"`
	GuestType string `json:"guest_type" validate:"required,oneof=adult child"`
	Index     int    `json:"index"      validate:"min=0"`
	Field     string `json:"field"      validate:"required,oneof=title firstName lastName email phoneCountryCode phoneNumber"`
	Value     string `json:"value"`
}

type DraftResponse struct {
	ID         string       `json:"id"`
	Roster     model.Roster `json:"roster"`
	BaseFare   float64      `json:"base_fare"`
	Tax        float64      `json:"tax"`
	IsComplete bool         `json:"is_complete"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (r *DraftResponse) FromModel(draft model.Draft) {
	r.ID = draft.ID
	r.Roster = draft.Roster
	r.BaseFare = draft.BaseFare
	r.Tax = draft.Tax
	r.IsComplete = draft.Roster.IsComplete()
	r.CreatedAt = draft.CreatedAt
}

// UpdateGuestResponse reports the outcome of a single field edit: the field's
// current verdict (empty when valid), the updated guest record, and whether
// the whole roster is now submittable.
type UpdateGuestResponse struct {
	Field      string       `json:"field"`
	Verdict    string       `json:"verdict,omitempty"`
	Guest      model.Person `json:"guest"`
	IsComplete bool         `json:"is_complete"`
}

// SubmitResponse carries either the created booking or the per-field errors
// that blocked submission, keyed "rooms[i].adults[j].field".
type SubmitResponse struct {
	Booking *bookingDto.BookingResponse `json:"booking,omitempty"`
	Errors  map[string]string           `json:"errors,omitempty"`
}
