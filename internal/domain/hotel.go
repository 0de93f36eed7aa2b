package domain

import "time"

// Hotel is serialized exactly as clients consume it: camelCase fields with
// the room collection nested under "Rooms".
type Hotel struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Rooms     []Room    `json:"Rooms"`
}

type Room struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   uint      `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
