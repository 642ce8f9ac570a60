package errors

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorInfoDomain is the domain stamped on the ErrorInfo detail of gRPC
// statuses built from an *Error.
const ErrorInfoDomain = "pokemon-explorer"

// ToGRPCError converts err into a gRPC status error. Errors that already
// carry a status pass through. An *Error keeps its message and gets an
// ErrorInfo detail whose reason is its Kind.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	e, ok := asError(err)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: e.Kind().String(),
		Domain: ErrorInfoDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return withInfo.Err()
}
