package dto

import "time"

type Payout struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"seller_id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}
