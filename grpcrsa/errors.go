package grpcrsa

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nfgallimore/rsa/pkcs1"
)

// mapRPC rebuilds structured pkcs1 errors from status codes so remote range
// violations are indistinguishable from local ones to callers branching on
// error kinds.
func mapRPC(op, representative string, err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		// Server uses InvalidArgument for out-of-range representatives and
		// mis-sized payloads.
		return &pkcs1.Error{
			Kind:           pkcs1.KindOutOfRange,
			Op:             op,
			Representative: representative,
			Message:        st.Message(),
		}
	case codes.OutOfRange:
		return &pkcs1.Error{
			Kind:    pkcs1.KindIntegerTooLarge,
			Op:      op,
			Message: st.Message(),
		}
	default:
		return err
	}
}
