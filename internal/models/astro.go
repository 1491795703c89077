package models

import "time"

// AstroEvent — астрономическое событие из AstronomyAPI.
type AstroEvent struct {
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	When      time.Time `json:"when"`
	Magnitude *float64  `json:"magnitude,omitempty"`
	Altitude  *float64  `json:"altitude,omitempty"`
	Details   string    `json:"details,omitempty"`
}
