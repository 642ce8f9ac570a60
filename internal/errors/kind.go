package errors

// Kind is the user-facing classification of a failed fetch. Every error,
// including ones that are not *Error, has exactly one Kind.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindNetworkFailure Kind = "network_failure"
	KindMalformed      Kind = "malformed"
)

func (k Kind) String() string {
	return string(k)
}

// KindOf reports the kind of err, or the empty Kind for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return kindForCode(GetCode(err))
}

func kindForCode(code Code) Kind {
	switch code {
	case CodeNotFound, CodeInvalidArgument:
		// an id that can never exist is an absent record
		return KindNotFound
	case CodeDataLoss:
		return KindMalformed
	default:
		return KindNetworkFailure
	}
}
