package mailer

import (
	"fmt"
	"html"
	"strings"
)

// Variables are the per-target values substituted into template content
type Variables struct {
	FirstName   string
	LastName    string
	Email       string
	Department  string
	TrackingURL string
	PixelURL    string
}

// Render substitutes {{placeholder}} variables into HTML content, escaping each value.
// The open pixel is appended when PixelURL is set.
func Render(content string, vars Variables) string {
	out := substitute(content, vars, html.EscapeString)
	if vars.PixelURL != "" {
		out += PixelTag(html.EscapeString(vars.PixelURL))
	}
	return out
}

// RenderText substitutes variables verbatim, for subjects and plain-text bodies
func RenderText(content string, vars Variables) string {
	return substitute(content, vars, func(s string) string { return s })
}

func substitute(content string, vars Variables, escape func(string) string) string {
	fullName := strings.TrimSpace(vars.FirstName + " " + vars.LastName)
	replacer := strings.NewReplacer(
		"{{first_name}}", escape(vars.FirstName),
		"{{last_name}}", escape(vars.LastName),
		"{{full_name}}", escape(fullName),
		"{{email}}", escape(vars.Email),
		"{{department}}", escape(vars.Department),
		"{{tracking_url}}", escape(vars.TrackingURL),
	)
	return replacer.Replace(content)
}

// PixelTag is the invisible image that records opens
func PixelTag(url string) string {
	return fmt.Sprintf(`<img src="%s" width="1" height="1" alt="" style="display:none" />`, url)
}

// TrackingURLs builds the click and open endpoints for a tracking token
func TrackingURLs(baseURL, token string) (click, pixel string) {
	base := strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("%s/track/%s/click", base, token), fmt.Sprintf("%s/track/%s/open", base, token)
}
