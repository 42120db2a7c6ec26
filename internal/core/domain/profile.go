package domain

import "time"

// SkinType is the closed set of skin classifications offered at sign-up.
type SkinType string

const (
	SkinOily        SkinType = "oily"
	SkinDry         SkinType = "dry"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
	SkinNormal      SkinType = "normal"
)

// Profile holds the dermatological background of a user. At most one profile
// exists per user; saves are upserts keyed on the user id.
type Profile struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SkinType   SkinType  `json:"skin_type"`
	Allergies  string    `json:"allergies,omitempty"`
	DOB        string    `json:"dob,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Conditions string    `json:"conditions,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
