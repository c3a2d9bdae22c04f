package models

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// GenerationForm holds the parsed input of a QR generation request.
// It lives only for the duration of one request.
type GenerationForm struct {
	Text     string
	Compress bool
	Color    string
	BGColor  string
	Logo     []byte
}

// Validate checks the form and returns a list of validation errors
func (f *GenerationForm) Validate() []string {
	var errors []string

	if f.Text == "" {
		errors = append(errors, "text must not be empty")
	}

	if !hexColorPattern.MatchString(f.Color) {
		errors = append(errors, "color must be a #RRGGBB hex value")
	}

	if !hexColorPattern.MatchString(f.BGColor) {
		errors = append(errors, "bg_color must be a #RRGGBB hex value")
	}

	return errors
}
