package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/grpc/codes"

	apperrors "github.com/schedkit/datefilter/errors"
	"github.com/schedkit/datefilter/filter"
)

func TestToErrorResponseParseError(t *testing.T) {
	_, err := filter.ParseCandidate("2022-02-30", time.UTC)
	if err == nil {
		t.Fatal("expected parse error")
	}

	resp := apperrors.ToErrorResponse(err)
	if resp.Code != codes.InvalidArgument || resp.Reason != "invalid_date" {
		t.Fatalf("mismatch: %+v", resp)
	}
	if resp.Details["date"] != "2022-02-30" {
		t.Fatalf("details mismatch: %+v", resp)
	}
}

func TestToErrorResponseUnsupportedOperator(t *testing.T) {
	_, err := filter.ParseOperator("~=")
	if err == nil {
		t.Fatal("expected operator error")
	}

	resp := apperrors.ToErrorResponse(err)
	if resp.Code != codes.InvalidArgument || resp.Reason != "unsupported_operator" {
		t.Fatalf("mismatch: %+v", resp)
	}
	if resp.Details["operator"] != "~=" {
		t.Fatalf("details mismatch: %+v", resp)
	}
}

func TestToErrorResponseWrappedErrors(t *testing.T) {
	// errors.As must see through fmt.Errorf wrapping.
	_, err := filter.ParseCandidate("nope", time.UTC)
	wrapped := fmt.Errorf("evaluating is_due: %w", err)

	resp := apperrors.ToErrorResponse(wrapped)
	if resp.Reason != "invalid_date" {
		t.Fatalf("mismatch: %+v", resp)
	}
}

func TestToErrorResponsePassthrough(t *testing.T) {
	in := apperrors.ValidationFields(map[string]string{"Date": "required"})
	out := apperrors.ToErrorResponse(in)
	if out.Reason != "validation_failed" || len(out.Violations) != 1 {
		t.Fatalf("passthrough mismatch: %+v", out)
	}
}

func TestToErrorResponseUnknown(t *testing.T) {
	resp := apperrors.ToErrorResponse(stderrors.New("boom"))
	if resp.Code != codes.Internal || resp.Reason != "unexpected_error" {
		t.Fatalf("mismatch: %+v", resp)
	}

	resp = apperrors.ToErrorResponse(nil)
	if resp.Code != codes.Internal {
		t.Fatalf("nil error mismatch: %+v", resp)
	}
}
