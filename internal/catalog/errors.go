package catalog

import "errors"

// Error kinds surfaced by the catalog client. Callers match these with
// errors.Is; the wrapped message carries provider detail.
var (
	// ErrQuotaExceeded means the provider rejected the call for plan or
	// rate reasons (HTTP 402 or 429). Terminal for the current action.
	ErrQuotaExceeded = errors.New("catalog quota exceeded")

	// ErrUnauthorized means the provider rejected our API key (HTTP 401).
	ErrUnauthorized = errors.New("catalog credential rejected")

	// ErrNotFound means the requested recipe id does not exist.
	ErrNotFound = errors.New("recipe not found")

	// ErrUnavailable covers transport failures and provider 5xx.
	// Recoverable by retrying.
	ErrUnavailable = errors.New("catalog unavailable")
)
