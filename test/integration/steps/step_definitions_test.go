package steps

import (
	"flag"
	"testing"

	"github.com/cucumber/godog"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

// TestFeatures runs all BDD feature tests against the in-memory backends.
func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
