package model

import (
	"time"
)

const (
	EntityName = "draft"
)

// GuestType distinguishes adult and child traveller records.
type GuestType string

const (
	GuestTypeAdult GuestType = "adult"
	GuestTypeChild GuestType = "child"
)

// Titles accepted per guest type.
var (
	AdultTitles = []string{"Mr", "Ms", "Mrs"}
	ChildTitles = []string{"Master", "Miss"}
)

// Field names addressable through the roster mutator.
const (
	FieldTitle            = "title"
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldEmail            = "email"
	FieldPhoneCountryCode = "phoneCountryCode"
	FieldPhoneNumber      = "phoneNumber"
)

// Person is one traveller record. Contact fields are populated only on the
// lead guest, the first adult of the first room.
type Person struct {
	Type             GuestType `json:"type"`
	Title            string    `json:"title"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email,omitempty"`
	PhoneCountryCode string    `json:"phone_country_code,omitempty"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	IsCompleted      bool      `json:"is_completed"`
}

// Room groups the travellers of one room, adults first, then children.
// Lengths are fixed at roster creation and never change afterwards.
type Room struct {
	Adults   []Person `json:"adults"`
	Children []Person `json:"children"`
}

// Roster is the full ordered room/traveller collection of one booking session.
type Roster struct {
	Rooms []Room `json:"rooms"`
}

// Occupancy sizes one room of a new roster.
type Occupancy struct {
	Adults   int
	Children int
}

// NewRoster builds an empty roster sized from the search parameters.
func NewRoster(occupancies []Occupancy) Roster {
	rooms := make([]Room, len(occupancies))

	for i, occ := range occupancies {
		adults := make([]Person, occ.Adults)
		for a := range adults {
			adults[a] = Person{Type: GuestTypeAdult}
		}

		children := make([]Person, occ.Children)
		for c := range children {
			children[c] = Person{Type: GuestTypeChild}
		}

		rooms[i] = Room{Adults: adults, Children: children}
	}

	return Roster{Rooms: rooms}
}

// IsLead reports whether the addressed record is the lead guest. The lead is
// positional: first adult of the first room, never reassigned.
func IsLead(room int, guestType GuestType, index int) bool {
	return room == 0 && guestType == GuestTypeAdult && index == 0
}

// Lead returns the lead guest record. The zero Person is returned for an
// empty roster.
func (r Roster) Lead() Person {
	if len(r.Rooms) == 0 || len(r.Rooms[0].Adults) == 0 {
		return Person{}
	}

	return r.Rooms[0].Adults[0]
}

// Person returns the addressed record, or false when the address is out of
// bounds.
func (r Roster) Person(room int, guestType GuestType, index int) (Person, bool) {
	if room < 0 || room >= len(r.Rooms) {
		return Person{}, false
	}

	group := r.Rooms[room].Adults
	if guestType == GuestTypeChild {
		group = r.Rooms[room].Children
	}

	if index < 0 || index >= len(group) {
		return Person{}, false
	}

	return group[index], true
}

// Draft is one booking session: the roster plus the fare inputs captured from
// the search selection. Drafts live in Redis for the session lifetime and are
// deleted on submission.
type Draft struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Roster    Roster    `json:"roster"`
	BaseFare  float64   `json:"base_fare"`
	Tax       float64   `json:"tax"`
	CreatedAt time.Time `json:"created_at"`
}
