package models

// PopupContent is the singleton promotional popup configuration. It is
// replaced wholesale by admin updates, never patched field by field.
type PopupContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink"`
	Enabled     bool   `json:"enabled"`
}
