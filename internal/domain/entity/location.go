package entity

import "time"

// LocationFix is a single device location sample.
type LocationFix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"` // Horizontal accuracy in meters, 0 when unknown.
	Timestamp time.Time `json:"timestamp"`
}
