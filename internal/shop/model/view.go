package model

// View is one named product image.
type View struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

const (
	LabelFront  = "Front View"
	LabelTop    = "Top View"
	LabelBottom = "Bottom View"
	LabelBack   = "Back View"
	// LabelFallback marks the configured placeholder image.
	LabelFallback = "Image"
)
