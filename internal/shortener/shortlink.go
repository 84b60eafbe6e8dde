package shortener

import (
	"time"

	"github.com/google/uuid"
)

// Code represents a short link code.
type Code string

// ShortLink maps a generated code to the target URL it redirects to.
type ShortLink struct {
	ID        uuid.UUID // assigned by the store on insert
	Code      Code
	TargetURL string
	CreatedAt time.Time
}
