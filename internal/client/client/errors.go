package client

import (
	"errors"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotSignedIn is returned for Diary API calls made without a session.
var ErrNotSignedIn = common.NewError(common.ErrUnauthorized, "not signed in")

// mapError translates a transport error into the common error taxonomy,
// keeping the server's status message as the detail.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var ce *common.Error
	if errors.As(err, &ce) {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return common.WrapError(common.ErrNetwork, err, "")
	}

	switch st.Code() {
	case codes.NotFound:
		return common.WrapError(common.ErrNotFound, err, st.Message())
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.WrapError(common.ErrUnauthorized, err, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return common.WrapError(common.ErrNetwork, err, "")
	case codes.InvalidArgument:
		return common.WrapError(common.ErrValidation, err, st.Message())
	default:
		return common.WrapError(common.ErrServer, err, st.Message())
	}
}
