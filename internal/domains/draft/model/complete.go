package model

import (
	"strings"
)

// PersonComplete is the per-person readiness predicate: trimmed first name,
// last name and title are non-empty; the lead guest additionally needs a
// valid email and a non-empty phone number.
func PersonComplete(p Person, isLead bool) bool {
	if strings.TrimSpace(p.FirstName) == "" ||
		strings.TrimSpace(p.LastName) == "" ||
		strings.TrimSpace(p.Title) == "" {
		return false
	}

	if !isLead {
		return true
	}

	return emailPattern.MatchString(p.Email) && strings.TrimSpace(p.PhoneNumber) != ""
}

// IsComplete derives the "ready to proceed" signal: a pure fold over the
// roster testing every traveller's readiness predicate. It is recomputed from
// current state after every mutation, never cached.
func (r Roster) IsComplete() bool {
	for roomIdx, room := range r.Rooms {
		for adultIdx, adult := range room.Adults {
			if !PersonComplete(adult, IsLead(roomIdx, GuestTypeAdult, adultIdx)) {
				return false
			}
		}

		for _, child := range room.Children {
			if !PersonComplete(child, false) {
				return false
			}
		}
	}

	return true
}
