package errors

import (
	"encoding/json"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestBuildersAreImmutable(t *testing.T) {
	base := New("boom", codes.InvalidArgument, map[string]string{"a": "1"})

	derived := base.WithDetail("b", "2")
	if _, ok := base.Details["b"]; ok {
		t.Fatalf("WithDetail mutated the receiver: %+v", base)
	}
	if derived.Details["a"] != "1" || derived.Details["b"] != "2" {
		t.Fatalf("WithDetail result mismatch: %+v", derived)
	}

	merged := base.WithDetails(map[string]string{"c": "3"})
	if _, ok := base.Details["c"]; ok {
		t.Fatalf("WithDetails mutated the receiver: %+v", base)
	}
	if merged.Details["c"] != "3" {
		t.Fatalf("WithDetails result mismatch: %+v", merged)
	}
}

func TestWithReason(t *testing.T) {
	e := InvalidArgument().WithReason("custom_reason")
	if e.Reason != "custom_reason" {
		t.Fatalf("reason mismatch: %+v", e)
	}
}

func TestErrorRendersJSON(t *testing.T) {
	e := InvalidDate("2022-13-01")

	var decoded struct {
		Code    string            `json:"code"`
		Reason  string            `json:"reason"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal([]byte(e.Error()), &decoded); err != nil {
		t.Fatalf("Error() must render JSON: %v", err)
	}
	if decoded.Code != codes.InvalidArgument.String() || decoded.Reason != "invalid_date" {
		t.Fatalf("rendered mismatch: %+v", decoded)
	}
	if decoded.Details["date"] != "2022-13-01" {
		t.Fatalf("details mismatch: %+v", decoded)
	}
}

func TestViolationsFromMap(t *testing.T) {
	vs := ViolationsFromMap(map[string]string{"Date": "required"})
	if len(vs) != 1 || vs[0].Field != "Date" || vs[0].Reason != "required" {
		t.Fatalf("violations mismatch: %+v", vs)
	}
	if ViolationsFromMap(nil) != nil {
		t.Fatal("empty map must yield nil violations")
	}
}
