package deflow

import (
	"errors"
	"testing"
)

func TestSuccess_Accessors(t *testing.T) {
	t.Parallel()

	r := Success(42)

	if !r.IsSuccess() {
		t.Fatalf("expected success")
	}
	if r.IsFailure() {
		t.Fatalf("expected not failure")
	}
	if r.Result() != 42 {
		t.Fatalf("expected 42, got %d", r.Result())
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error, got %v", r.Err())
	}
	if !r.HasResult() {
		t.Fatalf("expected HasResult")
	}
	if r.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestFail_Accessors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Fail[int](boom)

	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if !r.IsFailure() {
		t.Fatalf("expected IsFailure")
	}
	if !errors.Is(r.Err(), boom) {
		t.Fatalf("expected boom, got %v", r.Err())
	}
	if r.HasResult() {
		t.Fatalf("expected no result")
	}
}

func TestFailFrom_PreservesIdentity(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	from := Fail[string](boom)
	to := FailFrom[string, int](from)

	if to.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if to.Id() != from.Id() {
		t.Fatalf("expected id to be preserved")
	}
	if !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("expected createdAt to be preserved")
	}
	if !errors.Is(to.Err(), boom) {
		t.Fatalf("expected boom, got %v", to.Err())
	}
}

func TestZeroResult_IsEmpty(t *testing.T) {
	t.Parallel()

	var r Result[int]
	if !r.IsEmpty() {
		t.Fatalf("expected zero result to be empty")
	}
	if r.IsFailure() {
		t.Fatalf("empty result is not a failure")
	}
}

func TestSafeResult_Variants(t *testing.T) {
	t.Parallel()

	ok := SafeSuccess(7)
	if !ok.Ok || ok.Value != 7 || ok.Err != nil {
		t.Fatalf("malformed success: %+v", ok)
	}

	boom := errors.New("boom")
	bad := SafeFailure[int](boom)
	if bad.Ok || bad.Value != 0 || !errors.Is(bad.Err, boom) {
		t.Fatalf("malformed failure: %+v", bad)
	}

	v, err := bad.Unwrap()
	if v != 0 || !errors.Is(err, boom) {
		t.Fatalf("unexpected unwrap: %v, %v", v, err)
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	if len(GetErrors(nil)) != 0 {
		t.Fatalf("expected no errors for nil")
	}

	single := errors.New("one")
	errs := GetErrors(single)
	if len(errs) != 1 || errs[0] != single {
		t.Fatalf("expected [one], got %v", errs)
	}

	joined := errors.Join(errors.New("a"), errors.New("b"))
	errs = GetErrors(joined)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
}

func TestFromPanic(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if FromPanic(boom) != boom {
		t.Fatalf("expected error value to pass through")
	}

	err := FromPanic("oops")
	if err == nil || err.Error() != "panic: oops" {
		t.Fatalf("unexpected error: %v", err)
	}
}
