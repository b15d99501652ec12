// Package entity defines the domain entities for the wallet feature.
package entity

// Achievement describes an earnable gamification badge.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	PointsReward int   `json:"points_reward"`
}

// Catalog is the fixed set of achievements known to the platform, in display order.
var Catalog = []Achievement{
	{ID: "early-bird", Name: "Early Bird", Description: "Booked 5 slots in advance", Icon: "fas fa-calendar", PointsReward: 100},
	{ID: "speed-parker", Name: "Speed Parker", Description: "10 quick bookings", Icon: "fas fa-bolt", PointsReward: 150},
	{ID: "eco-warrior", Name: "Eco Warrior", Description: "Used 5 EV stations", Icon: "fas fa-leaf", PointsReward: 200},
	{ID: "frequent-parker", Name: "Frequent Parker", Description: "Complete 50 bookings", Icon: "fas fa-parking", PointsReward: 500},
	{ID: "social-sharer", Name: "Social Sharer", Description: "Share Park Sarthi with 5 friends", Icon: "fas fa-share", PointsReward: 300},
}

// ByID returns the catalog achievement with the given identifier.
func ByID(id string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
