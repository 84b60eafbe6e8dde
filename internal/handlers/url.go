package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/linkbox/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler handles URL shortening operations.
type URLHandler struct {
	service *shortener.Service
	baseURL string
	logger  *zap.Logger
}

// NewURLHandler creates a new URL handler. An empty baseURL means short URLs
// are built from the scheme and host of each request.
func NewURLHandler(service *shortener.Service, baseURL string, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (h *URLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	link, err := h.service.Create(ctx, req.Body.URL)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			return nil, NewErrorResponse(http.StatusBadRequest, "Invalid Url")
		case errors.Is(err, shortener.ErrCollisionExhausted):
			h.logger.Error("short code space exhausted", zap.Error(err))

			return nil, huma.Error500InternalServerError("failed to allocate short code")
		default:
			h.logger.Error("failed to save short link", zap.Error(err))

			return nil, huma.Error500InternalServerError("failed to save url")
		}
	}

	h.logger.Debug("short link created",
		zap.String("code", string(link.Code)),
		zap.String("targetUrl", link.TargetURL),
	)

	resp := &CreateShortURLResponse{}
	resp.Body.ShortURL = fmt.Sprintf("%s/%s", h.origin(ctx), link.Code)

	return resp, nil
}

func (h *URLHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	link, err := h.service.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to resolve short link", zap.String("code", req.Code), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to get url")
	}

	return &RedirectResponse{
		Status:   http.StatusFound,
		Location: link.TargetURL,
	}, nil
}

// origin returns scheme://host for short URLs.
func (h *URLHandler) origin(ctx context.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	meta := RequestMetaFromContext(ctx)

	scheme := meta.Scheme
	if scheme == "" {
		scheme = "http"
	}

	host := meta.Host
	if host == "" {
		host = "localhost"
	}

	return scheme + "://" + host
}
