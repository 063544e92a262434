// Package test holds the handful of assertions the rest of this module tests with.
package test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func FailOnError(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatalf("%+v", err)
	}
}

// Equality fails the test if want and got differ, printing a go-cmp diff alongside the optional message.
func Equality[T any](t testing.TB, want, got T, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s(-want +got):\n%s", message(msgAndArgs), diff)
	}
}

// Truth fails the test if ok is false.
func Truth(t testing.TB, ok bool, msgAndArgs ...any) {
	t.Helper()
	if !ok {
		t.Fatalf("%s", message(msgAndArgs))
	}
}

// Diff is cmp.Diff, re-exported so tests needing options don't import go-cmp directly.
func Diff(want, got any, opts ...cmp.Option) string { return cmp.Diff(want, got, opts...) }

func message(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return ""
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...) + " "
}
