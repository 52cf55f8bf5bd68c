package utils

import "github.com/microcosm-cc/bluemonday"

// AI-generated text is rendered verbatim in the client, so strip all markup.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize removes any HTML from model-generated text before it is stored
// or served.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
