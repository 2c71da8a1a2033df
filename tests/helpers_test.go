package tests_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains every substring.
func expectContains(substrs ...string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		for _, substr := range substrs {
			if !strings.Contains(stdout, substr) {
				testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
				testing.Fail()
			}
		}
	}
}

// expectInOrder returns a comparator verifying the substrings appear in the output in the given order.
func expectInOrder(substrs ...string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		rest := stdout

		for _, substr := range substrs {
			idx := strings.Index(rest, substr)
			if idx < 0 {
				testing.Log(fmt.Sprintf("expected %q (in order %q) not found in output:\n%s", substr, substrs, stdout))
				testing.Fail()

				return
			}

			rest = rest[idx+len(substr):]
		}
	}
}

// expectNoOutput returns a comparator verifying nothing was written to stdout.
func expectNoOutput() test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if strings.TrimSpace(stdout) != "" {
			testing.Log(fmt.Sprintf("expected no output, got:\n%s", stdout))
			testing.Fail()
		}
	}
}
