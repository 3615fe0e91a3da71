package eval

import (
	"context"
	"testing"
)

// failer is the slice of testing.TB that assertTest needs. It exists so the
// assertion logic is testable with a recording fake.
type failer interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// AssertTest measures every metric against the test case and fails t for each
// metric whose score lands on the failing side of its threshold. A metric
// that cannot be measured (judge unreachable, missing fields) is fatal to the
// test case.
func AssertTest(t testing.TB, tc TestCase, metrics ...Metric) {
	t.Helper()
	assertTest(t.Context(), t, tc, metrics...)
}

func assertTest(ctx context.Context, t failer, tc TestCase, metrics ...Metric) {
	t.Helper()

	for _, m := range metrics {
		result, err := m.Measure(ctx, tc)
		if err != nil {
			t.Fatalf("metric %s: %v", m.Name(), err)
			return
		}
		if !result.Passed {
			t.Errorf("metric %s failed: score=%.2f threshold=%.2f reason=%s",
				m.Name(), result.Score, m.Threshold(), result.Reason)
		}
	}
}
