package service

import (
	"time"

	"github.com/madhuraks/ecobazaar/cart/pkg/response"
)

// Member accounts are out of scope, the roster is sample data keyed only by
// the cart code. Ownership is cosmetic.
func memberRoster(now time.Time) []response.Member {
	return []response.Member{
		{ID: "1", Name: "Madhura", Role: "Owner", Status: "online", JoinedAt: now.Add(-2 * time.Hour)},
		{ID: "2", Name: "Priya", Role: "Member", Status: "online", JoinedAt: now.Add(-1 * time.Hour)},
		{ID: "3", Name: "Raj", Role: "Member", Status: "offline", JoinedAt: now.Add(-30 * time.Minute)},
		{ID: "4", Name: "Anita", Role: "Member", Status: "online", JoinedAt: now.Add(-15 * time.Minute)},
	}
}
