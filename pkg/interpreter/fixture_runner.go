package interpreter

import (
	"fmt"
	"strings"

	"mica/interpreter-go/pkg/driver"
	"mica/interpreter-go/pkg/runtime"
)

// FixtureOutcome records how one fixture case behaved.
type FixtureOutcome struct {
	Suite  string
	Case   string
	Passed bool
	Detail string
}

// RunFixtureCase evaluates c in a fresh global environment and compares the
// outcome against its expectation.
func RunFixtureCase(c driver.FixtureCase) FixtureOutcome {
	outcome := FixtureOutcome{Case: c.Name}
	value, err := New().Execute(c.Source)

	if want := strings.TrimSpace(c.Expect.Error); want != "" {
		switch {
		case err == nil:
			outcome.Detail = fmt.Sprintf("expected error containing %q, got %s", want, runtime.Render(value))
		case !strings.Contains(err.Error(), want):
			outcome.Detail = fmt.Sprintf("expected error containing %q, got %q", want, err.Error())
		default:
			outcome.Passed = true
		}
		return outcome
	}

	if err != nil {
		outcome.Detail = fmt.Sprintf("evaluation error: %v", err)
		return outcome
	}
	got := runtime.Render(value)
	want := ""
	if c.Expect.Result != nil {
		want = strings.TrimSpace(*c.Expect.Result)
	}
	if got != want {
		outcome.Detail = fmt.Sprintf("expected %s, got %s", want, got)
		return outcome
	}
	outcome.Passed = true
	return outcome
}

// RunFixtureSuite runs every case of suite in order.
func RunFixtureSuite(suite *driver.FixtureSuite) []FixtureOutcome {
	if suite == nil {
		return nil
	}
	label := suite.Description
	if label == "" {
		label = suite.Path
	}
	outcomes := make([]FixtureOutcome, 0, len(suite.Cases))
	for _, c := range suite.Cases {
		outcome := RunFixtureCase(c)
		outcome.Suite = label
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
