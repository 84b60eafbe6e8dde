package handlers

import (
	"context"
	_ "embed"
)

//go:embed static/index.html
var indexHTML []byte

// Index serves the landing page.
func Index(_ context.Context, _ *struct{}) (*IndexResponse, error) {
	return &IndexResponse{
		ContentType: "text/html; charset=UTF-8",
		Body:        indexHTML,
	}, nil
}
