package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wine-cellar/internal/app"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/internal/store"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/internal/validators"
	"github.com/MKhiriev/go-wine-cellar/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order: the first target found in the chain
// decides the response. Specific causes precede the generic wrappers.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrWineNotFound, errorResponse{http.StatusNotFound, app.MsgWineNotFound}},
	{service.ErrMissingMandatoryField, errorResponse{http.StatusBadRequest, app.MsgMissingMandatoryField}},
	{models.ErrInvalidSortDirection, errorResponse{http.StatusBadRequest, app.MsgInvalidSortDirection}},
	{query.ErrInvalidSortField, errorResponse{http.StatusBadRequest, app.MsgInvalidSortField}},
	{validators.ErrInvalidCriteriaRange, errorResponse{http.StatusBadRequest, app.MsgInvalidCriteriaRange}},
	{validators.ErrInvalidPage, errorResponse{http.StatusBadRequest, app.MsgInvalidPage}},
	{validators.ErrInvalidPageSize, errorResponse{http.StatusBadRequest, app.MsgInvalidPage}},
	{query.ErrInvalidPageRequest, errorResponse{http.StatusBadRequest, app.MsgInvalidPage}},
	{ErrInvalidQueryParameter, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{utils.ErrEmptyBody, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{store.ErrWineConstraintViolation, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
}

var internalError = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return internalError
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg(msg)
	}

	http.Error(w, resp.message, resp.status)
}
