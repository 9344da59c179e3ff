package server

import (
	"errors"
	"net/http"

	"github.com/anton/hh-resume-extractor/internal/fetch"
	"github.com/anton/hh-resume-extractor/internal/hh"
)

// HTTPStatus maps the pipeline's failure taxonomy to response codes:
// a hidden or deleted resume is Gone, anything the upstream site did wrong
// is Bad Gateway.
func HTTPStatus(err error) int {
	var unavailable *hh.UnavailableError
	if errors.As(err, &unavailable) {
		return http.StatusGone
	}

	var status *fetch.StatusError
	if errors.As(err, &status) {
		return http.StatusBadGateway
	}

	var transport *fetch.TransportError
	if errors.As(err, &transport) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
