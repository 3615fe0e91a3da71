package llm

import (
	"fmt"
)

// InvocationError wraps every failure to obtain a model response: credential
// resolution, request serialization, the network call itself, or an unusable
// response body. It is never recovered locally; callers let it propagate and
// fail the test case.
type InvocationError struct {
	ModelID string
	Op      string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("model invocation failed (op=%s, model=%s): %v", e.Op, e.ModelID, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
