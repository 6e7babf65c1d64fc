package errors

import "google.golang.org/grpc/codes"

// Factory functions returning immutable presets.
func Unknown() ErrorResponse {
	return New("Unknown error occurred", codes.Unknown, nil).WithReason("unknown")
}

func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}

func Internal() ErrorResponse {
	return New("Internal error", codes.Internal, nil).WithReason("internal")
}

// InvalidDate flags a candidate date string that could not be parsed as a
// real calendar date in one of the accepted layouts.
func InvalidDate(value string) ErrorResponse {
	return New("Invalid date", codes.InvalidArgument, nil).
		WithReason("invalid_date").
		WithDetail("date", value)
}

// UnsupportedOperator flags an operator symbol outside the six recognized
// comparison operators.
func UnsupportedOperator(symbol string) ErrorResponse {
	return New("Unsupported comparison operator", codes.InvalidArgument, nil).
		WithReason("unsupported_operator").
		WithDetail("operator", symbol)
}

func ValidationFields(fields map[string]string) ErrorResponse {
	return InvalidArgument().
		WithReason("validation_failed").
		WithDetails(fields).
		WithViolations(ViolationsFromMap(fields))
}
