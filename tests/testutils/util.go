// Package testutils provides test infrastructure for phare integration tests.
package testutils

import (
	"path/filepath"
	"runtime"

	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/agar/pkg/agar"
)

// Setup creates a test case configured to run the phare binary.
func Setup() *test.Case {
	binaryPath := filepath.Join(projectRoot(), "bin", "phare")

	return agar.Setup(binaryPath)
}

// Fixture returns the absolute path of a file or folder under tests/testdata.
func Fixture(elem ...string) string {
	return filepath.Join(append([]string{projectRoot(), "tests", "testdata"}, elem...)...)
}

func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed

	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}
