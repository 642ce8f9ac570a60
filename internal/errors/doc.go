// Package errors provides the structured errors shared by every layer of the
// explorer.
//
// Every error carries a Code, a user-facing Message and optional metadata.
// Codes map onto HTTP statuses for the browser and JSON surfaces and onto gRPC
// codes for the health server.
//
// # Creating errors
//
//	err := errors.NotFoundf("pokemon %d not found", id)
//	err := errors.Unavailable("catalog API unreachable").WithMeta("url", u)
//
// # Wrapping
//
// Wrap keeps the code of an existing *Error and defaults to Internal for
// anything else. WrapWithCode replaces the code:
//
//	if err := json.Unmarshal(body, &v); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDataLoss, "malformed pokemon record")
//	}
//
// # Fetch results
//
// Upstream fetches resolve to either a value or an error whose Kind is one of
// KindNotFound, KindNetworkFailure or KindMalformed:
//
//	switch errors.KindOf(err) {
//	case errors.KindNotFound:
//	    // render "Pokemon not found"
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("BaseURL", cfg.BaseURL, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
