// Package sanitize filters user-supplied content before it is stored. Stored
// values are rendered back to other visitors, so everything free-form passes
// through here on the way in.
package sanitize

import (
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicy = bluemonday.StrictPolicy()
	htmlPolicy = newHTMLPolicy()
)

// newHTMLPolicy allows a small set of formatting tags and nothing else. Event
// handlers, scripts, styles and unknown attributes are stripped regardless of
// nesting.
func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "u", "h1", "h2", "h3", "h4", "ul", "ol", "li", "a")
	p.AllowAttrs("href", "title", "target").Globally()
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(true)
	p.RequireNoFollowOnLinks(false)
	return p
}

// Text strips every HTML tag and attribute, keeping only text content.
func Text(dirty string) string {
	if dirty == "" {
		return ""
	}
	return textPolicy.Sanitize(dirty)
}

// HTML keeps basic formatting tags (p, br, strong, em, u, h1-h4, ul, ol, li, a)
// with only href, title and target attributes.
func HTML(dirty string) string {
	if dirty == "" {
		return ""
	}
	return htmlPolicy.Sanitize(dirty)
}

// URL rejects anything that is not http, https or a root-relative path and
// returns the trimmed URL otherwise. Dangerous schemes (javascript:, data:,
// vbscript:, file:) come back as the empty string, including percent-encoded
// spellings of them.
func URL(raw string) string {
	if raw == "" {
		return ""
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if hasDangerousScheme(trimmed) {
		return ""
	}
	// A percent-encoded scheme prefix decodes to the same attack once the
	// browser normalizes it.
	if decoded, err := url.QueryUnescape(trimmed); err == nil && hasDangerousScheme(decoded) {
		return ""
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}
	// Root-relative paths are fine; protocol-relative "//host" is not, it
	// inherits whatever scheme the page has.
	if strings.HasPrefix(trimmed, "/") && !strings.HasPrefix(trimmed, "//") {
		return trimmed
	}

	return ""
}

var dangerousSchemes = []string{"javascript:", "data:", "vbscript:", "file:"}

func hasDangerousScheme(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}
