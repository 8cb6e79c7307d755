package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength defines the maximum allowed length for submitted URLs.
const maxURLLength = 2048

// ValidateURL validates the format of a submitted feed URL.
// It checks that the URL is well-formed, uses an HTTP or HTTPS scheme,
// and has a non-empty host. Returns a ValidationError for user-facing
// problems with the value.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "news_url", Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "news_url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "news_url", Message: "URL must use http or https scheme"}
	}

	if parsed.Host == "" {
		return &ValidationError{Field: "news_url", Message: "URL must include a host"}
	}

	return nil
}
