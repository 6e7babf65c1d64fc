package errors

import (
	"errors"

	"github.com/schedkit/datefilter/filter"
)

// ToErrorResponse converts any error into ErrorResponse for the host
// boundary. Supported inputs:
// - ErrorResponse / *ErrorResponse (direct passthrough)
// - filter.ParseError
// - filter.UnsupportedOperatorError
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	if e, ok := err.(ErrorResponse); ok {
		return e
	}

	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	var pe *filter.ParseError
	if errors.As(err, &pe) {
		return InvalidDate(pe.Input)
	}

	var ue *filter.UnsupportedOperatorError
	if errors.As(err, &ue) {
		return UnsupportedOperator(ue.Operator)
	}

	return Internal().WithReason("unexpected_error")
}
