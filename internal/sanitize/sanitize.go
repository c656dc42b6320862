// Package sanitize strips dangerous markup from provider-supplied
// HTML. Recipe summaries arrive as HTML fragments from a third party
// and must never reach a client unfiltered.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var summaryPolicy = bluemonday.UGCPolicy()

// Summary sanitizes a recipe summary fragment, keeping basic
// formatting tags and safe links while removing scripts, event
// handlers and unknown elements.
func Summary(html string) string {
	return strings.TrimSpace(summaryPolicy.Sanitize(html))
}
