package tests_test

import (
	"testing"

	"github.com/containerd/nerdctl/mod/tigron/expect"
	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/phare/tests/testutils"
)

func TestInspectCLI(t *testing.T) {
	testCase := testutils.Setup()

	testCase.SubTests = []*test.Case{
		{
			Description: "inspect without arguments fails",
			Command:     test.Command("inspect"),
			Expected:    test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "inspect nonexistent file fails",
			Command:     test.Command("inspect", "/nonexistent/path/report.json"),
			Expected:    test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "inspect malformed report fails",
			Command:     test.Command("inspect", testutils.Fixture("broken", "run-1.json")),
			Expected:    test.Expects(expect.ExitCodeGenericFail, nil, expectNoOutput()),
		},
		{
			Description: "inspect shows formatted values",
			Command:     test.Command("inspect", testutils.Fixture("runs", "before", "desktop", "run-2.json")),
			Expected: test.Expects(expect.ExitCodeSuccess, nil, expectContains(
				"Performance: 90.0",
				"Largest Contentful Paint: 2.10s",
				"Total Blocking Time: 120ms",
				"https://example.com/",
			)),
		},
		{
			Description: "inspect lists folder reports in file name order",
			Command:     test.Command("inspect", testutils.Fixture("runs", "before", "desktop")),
			Expected:    test.Expects(expect.ExitCodeSuccess, nil, expectInOrder("run-2.json", "run-10.json")),
		},
		{
			Description: "inspect reports missing values as not available",
			Command:     test.Command("inspect", testutils.Fixture("no-accessibility.json")),
			Expected:    test.Expects(expect.ExitCodeSuccess, nil, expectContains("Accessibility: N/A", "Speed Index: N/A")),
		},
	}

	testCase.Run(t)
}
