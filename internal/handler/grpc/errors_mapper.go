package grpc

import (
	"errors"

	"github.com/MKhiriev/go-wine-cellar/internal/app"
	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/internal/store"
	"github.com/MKhiriev/go-wine-cellar/internal/validators"
	"github.com/MKhiriev/go-wine-cellar/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errInvalidWineID = errors.New(app.MsgInvalidWineID)

// errorCodes is checked in order: the first target found in the chain
// decides the status.
var errorCodes = []struct {
	target  error
	code    codes.Code
	message string
}{
	{service.ErrWineNotFound, codes.NotFound, app.MsgWineNotFound},
	{errInvalidWineID, codes.InvalidArgument, app.MsgInvalidWineID},
	{service.ErrMissingMandatoryField, codes.InvalidArgument, app.MsgMissingMandatoryField},
	{models.ErrInvalidSortDirection, codes.InvalidArgument, app.MsgInvalidSortDirection},
	{query.ErrInvalidSortField, codes.InvalidArgument, app.MsgInvalidSortField},
	{validators.ErrInvalidCriteriaRange, codes.InvalidArgument, app.MsgInvalidCriteriaRange},
	{validators.ErrInvalidPage, codes.InvalidArgument, app.MsgInvalidPage},
	{validators.ErrInvalidPageSize, codes.InvalidArgument, app.MsgInvalidPage},
	{query.ErrInvalidPageRequest, codes.InvalidArgument, app.MsgInvalidPage},
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},
	{store.ErrWineConstraintViolation, codes.InvalidArgument, app.MsgInvalidDataProvided},
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},
}

func codeFromError(err error) (codes.Code, string) {
	for _, e := range errorCodes {
		if errors.Is(err, e.target) {
			return e.code, e.message
		}
	}
	return codes.Internal, app.MsgInternalServerError
}

// statusError converts a service error into a gRPC status error.
func statusError(err error) error {
	code, msg := codeFromError(err)
	return status.Error(code, msg)
}
