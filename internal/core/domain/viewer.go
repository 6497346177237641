package domain

// ViewerContext describes the person an ad slot is being filled for. It is
// built by the feed service from profile and session data and passed into
// the engine on every request. Age is a pointer because it may be unknown;
// an unknown age passes age-targeting clauses.
type ViewerContext struct {
	UserID    string   `json:"user_id" validate:"required"`
	Age       *int     `json:"age,omitempty" validate:"omitempty,gte=0,lte=130"`
	Gender    string   `json:"gender,omitempty"`
	Country   string   `json:"country,omitempty"`
	Region    string   `json:"region,omitempty"`
	City      string   `json:"city,omitempty"`
	Lat       *float64 `json:"lat,omitempty"`
	Lon       *float64 `json:"lon,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Behaviors []string `json:"behaviors,omitempty"`
	Device    string   `json:"device,omitempty"`
}

// SlotContext identifies the feed position being filled. Surface narrows
// candidates to ads placed on that surface; an empty surface accepts any.
type SlotContext struct {
	Surface  string `json:"surface,omitempty"`
	Position int    `json:"position,omitempty"`
}
