package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidRoute: {http.StatusBadRequest, app.MsgInvalidRoute},
	service.ErrJobNotFound:  {http.StatusNotFound, app.MsgJobNotFound},

	store.ErrBuildingSQLQuery:     {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingQuery:       {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrBeginningTransaction: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrCommitingTransaction: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingStatement:   {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrScanningRow:          {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrScanningRows:         {http.StatusInternalServerError, app.MsgInternalServerError},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
