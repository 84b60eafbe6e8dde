package shortener

import (
	"fmt"
	"net/url"
)

// ParseTarget checks that rawURL is a non-empty absolute or relative URI reference.
// Loosely formed relative references such as "some path?x" are accepted.
func ParseTarget(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, ErrInvalidURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	return u, nil
}
