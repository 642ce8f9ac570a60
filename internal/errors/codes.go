package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an Error.
type Code string

const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeUnimplemented    Code = "UNIMPLEMENTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeDataLoss         Code = "DATA_LOSS"
)

type codeMapping struct {
	httpStatus int
	grpcCode   codes.Code
}

// Unavailable and DataLoss are upstream failures, so both answer 502.
var codeMappings = map[Code]codeMapping{
	CodeOK:               {http.StatusOK, codes.OK},
	CodeCanceled:         {http.StatusRequestTimeout, codes.Canceled},
	CodeInvalidArgument:  {http.StatusBadRequest, codes.InvalidArgument},
	CodeDeadlineExceeded: {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	CodeNotFound:         {http.StatusNotFound, codes.NotFound},
	CodeUnimplemented:    {http.StatusNotImplemented, codes.Unimplemented},
	CodeInternal:         {http.StatusInternalServerError, codes.Internal},
	CodeUnavailable:      {http.StatusBadGateway, codes.Unavailable},
	CodeDataLoss:         {http.StatusBadGateway, codes.DataLoss},
}

func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the status the web handlers answer with. Unknown codes
// are 500.
func (c Code) HTTPStatus() int {
	if m, ok := codeMappings[c]; ok {
		return m.httpStatus
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC code for c. Unknown codes are codes.Unknown.
func (c Code) GRPCCode() codes.Code {
	if m, ok := codeMappings[c]; ok {
		return m.grpcCode
	}
	return codes.Unknown
}
