package domain

import "time"

// Frequency is how often a product is applied. The set mirrors the options
// the client offers; anything else is rejected at the boundary.
type Frequency string

const (
	FreqDaily         Frequency = "daily"
	FreqTwiceADay     Frequency = "twice a day"
	FreqEveryOtherDay Frequency = "every other day"
	FreqWeekly        Frequency = "weekly"
	FreqAsNeeded      Frequency = "as needed"
)

// Product is a skincare regimen item (cream, ointment, supplement, ...)
// owned by exactly one user.
type Product struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type,omitempty"`
	Frequency Frequency `json:"frequency"`
	StartDate string    `json:"start_date,omitempty"`
	EndDate   string    `json:"end_date,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UsageLog records a single application of a product. It carries no user id;
// ownership is resolved through the parent product.
type UsageLog struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	DateUsed    string `json:"date_used"`
	Notes       string `json:"notes,omitempty"`
	SideEffects string `json:"side_effects,omitempty"`
}
