package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/utils"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

type httpAclSource struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAclSource constructs an [AclSource] that GETs
// "<cfg.BaseURL>/<route>.acl". The response body is handed to the caller
// unread, so large lists are streamed rather than buffered.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed.
func NewHTTPAclSource(cfg config.ClientACL, logger *logger.Logger) (AclSource, error) {
	baseURL, err := utils.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid acl base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "text/plain")

	return &httpAclSource{client: client, logger: logger}, nil
}

// Open implements [AclSource]. Transport failures and non-2xx answers are
// wrapped with [ErrIO].
func (s *httpAclSource) Open(ctx context.Context, route string) (io.ReadCloser, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/" + url.PathEscape(models.AclFileName(route)))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", ErrIO, route, err)
	}

	body := resp.RawBody()
	if err = mapHTTPError(resp); err != nil {
		if body != nil {
			if closeErr := body.Close(); closeErr != nil {
				s.logger.Warn().Err(closeErr).Str("route", route).Msg("close rejected acl response")
			}
		}
		return nil, fmt.Errorf("fetch %s: %w", route, err)
	}

	s.logger.Debug().
		Str("route", route).
		Int("status", resp.StatusCode()).
		Msg("acl download started")

	return body, nil
}
