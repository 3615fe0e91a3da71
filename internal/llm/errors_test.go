package llm

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInvocationError_Message(t *testing.T) {
	cause := errors.New("connection refused")
	err := &InvocationError{ModelID: "qwen.qwen3-32b-v1:0", Op: "invoke-model", Err: cause}

	msg := err.Error()
	for _, want := range []string{"invoke-model", "qwen.qwen3-32b-v1:0", "connection refused"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error message to contain %q, got: %s", want, msg)
		}
	}
}

func TestInvocationError_Unwrap(t *testing.T) {
	cause := errors.New("expired token")
	err := fmt.Errorf("judge call failed: %w", &InvocationError{Op: "resolve-credentials", Err: cause})

	var target *InvocationError
	if !errors.As(err, &target) {
		t.Fatal("Expected errors.As to find InvocationError through wrapping")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the cause")
	}
}
