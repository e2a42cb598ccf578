package dto

import "time"

type Seller struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	StoreName  string     `json:"store_name"`
	Status     string     `json:"status"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}
