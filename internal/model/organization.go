package model

import "time"

// Organization is the unit of data isolation: every user and project belongs
// to exactly one organization.
type Organization struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
	ID        int64     `json:"id"`
}
