package handler

// Request schemas for all authenticated resources. Validation tags are
// enforced through echo's Validator before anything reaches a service; owner
// identity is never part of a body; it always comes from the verified token.

type profileRequest struct {
	SkinType   string `json:"skin_type"  validate:"required,oneof=oily dry combination sensitive normal"`
	Allergies  string `json:"allergies"`
	DOB        string `json:"dob"        validate:"omitempty,datetime=2006-01-02"`
	Gender     string `json:"gender"`
	Conditions string `json:"conditions"`
}

type productRequest struct {
	Name      string `json:"name"       validate:"required"`
	Type      string `json:"type"`
	Frequency string `json:"frequency"  validate:"required,oneof=daily 'twice a day' 'every other day' weekly 'as needed'"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
	Notes     string `json:"notes"`
}

type createUsageLogRequest struct {
	DateUsed    string `json:"date_used"    validate:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes"`
	SideEffects string `json:"side_effects"`
}

type updateUsageLogRequest struct {
	DateUsed    string `json:"date_used"    validate:"required,datetime=2006-01-02"`
	Notes       string `json:"notes"`
	SideEffects string `json:"side_effects"`
}

type createDietLogRequest struct {
	Date        string            `json:"date"         validate:"required,datetime=2006-01-02"`
	Meals       map[string]string `json:"meals"`
	Snacks      string            `json:"snacks"`
	WaterIntake int               `json:"water_intake" validate:"gte=0"`
}

// The day a diet log belongs to is fixed at creation; updates only touch
// its contents.
type updateDietLogRequest struct {
	Meals       map[string]string `json:"meals"`
	Snacks      string            `json:"snacks"`
	WaterIntake int               `json:"water_intake" validate:"gte=0"`
}

type wellBeingRequest struct {
	Date        string  `json:"date"         validate:"omitempty,datetime=2006-01-02"`
	Mood        string  `json:"mood"         validate:"required"`
	StressLevel string  `json:"stress_level"`
	StressScale int     `json:"stress_scale" validate:"omitempty,min=1,max=10"`
	SleepHours  float64 `json:"sleep_hours"  validate:"gte=0"`
}
