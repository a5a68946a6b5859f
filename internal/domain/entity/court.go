// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Court is a physical location where player presence is tracked.
type Court struct {
	ID        string    `json:"id"`         // Court identifier, shared with the Radar geofence external id.
	Name      string    `json:"name"`       // Display name, e.g. "Golden Gate Park Court 3".
	Latitude  float64   `json:"latitude"`   // The geographic latitude.
	Longitude float64   `json:"longitude"`  // The geographic longitude.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this court was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Point returns the court location as an orb point (lng, lat order).
func (c *Court) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
