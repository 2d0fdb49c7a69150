package model

// ValidateAll runs every field rule over the full roster and merges in the
// submit-time duplicate check. An empty map means the roster may be submitted.
func ValidateAll(r Roster) ErrorMap {
	result := ErrorMap{}

	forEachPerson(r, func(key FieldKey, p Person) {
		addVerdict := func(field, value string) {
			if msg := ValidateField(field, value); msg != "" {
				k := key
				k.Field = field
				result[k] = msg
			}
		}

		addVerdict(FieldTitle, p.Title)
		addVerdict(FieldFirstName, p.FirstName)
		addVerdict(FieldLastName, p.LastName)

		if IsLead(key.Room, key.GuestType, key.Index) {
			addVerdict(FieldEmail, p.Email)
			addVerdict(FieldPhoneCountryCode, p.PhoneCountryCode)
			addVerdict(FieldPhoneNumber, p.PhoneNumber)
		}
	})

	result.Merge(DuplicateFirstNames(r))

	return result
}

// TravellerEntry is one (title, name, type) tuple of the submission payload.
type TravellerEntry struct {
	Title     string    `json:"title"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Type      GuestType `json:"type"`
}

// RoomEntry groups the travellers of one room, adults first.
type RoomEntry struct {
	Travellers []TravellerEntry `json:"travellers"`
}

// Contact carries the lead guest's contact details.
type Contact struct {
	Email            string `json:"email"`
	PhoneCountryCode string `json:"phone_country_code"`
	PhoneNumber      string `json:"phone_number"`
}

// Submission is the payload handed to the booking collaborator when a
// complete roster is submitted.
type Submission struct {
	Rooms   []RoomEntry `json:"rooms"`
	Contact Contact     `json:"contact"`
	Total   float64     `json:"total"`
}

// BuildSubmission assembles the submission payload from the roster and the
// composed total. Ordering follows the roster: rooms in sequence, adults
// before children within each room.
func BuildSubmission(r Roster, total float64) Submission {
	rooms := make([]RoomEntry, len(r.Rooms))

	for roomIdx, room := range r.Rooms {
		travellers := make([]TravellerEntry, 0, len(room.Adults)+len(room.Children))

		for _, adult := range room.Adults {
			travellers = append(travellers, TravellerEntry{
				Title:     adult.Title,
				FirstName: adult.FirstName,
				LastName:  adult.LastName,
				Type:      GuestTypeAdult,
			})
		}

		for _, child := range room.Children {
			travellers = append(travellers, TravellerEntry{
				Title:     child.Title,
				FirstName: child.FirstName,
				LastName:  child.LastName,
				Type:      GuestTypeChild,
			})
		}

		rooms[roomIdx] = RoomEntry{Travellers: travellers}
	}

	lead := r.Lead()

	return Submission{
		Rooms: rooms,
		Contact: Contact{
			Email:            lead.Email,
			PhoneCountryCode: lead.PhoneCountryCode,
			PhoneNumber:      lead.PhoneNumber,
		},
		Total: total,
	}
}
