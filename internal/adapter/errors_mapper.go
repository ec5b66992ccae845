package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Anything else is reported as
// an I/O failure: a missing or unavailable rule list is expected to show up
// on a later attempt.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return fmt.Errorf("%w: %w: %d %s", ErrIO, ErrUnexpectedStatus, resp.StatusCode(), http.StatusText(resp.StatusCode()))
}
