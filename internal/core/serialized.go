package core

// Serialized is the portable form of one element. Type selects the reviver on load.
type Serialized struct {
	Type   Tag     `json:"type"`
	ID     string  `json:"id"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Radius float64 `json:"radius,omitempty"`
	Angle  float64 `json:"angle"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`
	Fill   string  `json:"fill"`
	Label  string  `json:"label,omitempty"`
	Design *int    `json:"design,omitempty"`
}
