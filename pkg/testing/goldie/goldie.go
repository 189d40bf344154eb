// Package goldie wraps github.com/sebdah/goldie/v2 with the fixture layout used across this
// module: golden files live in ./fixtures next to the test and end in .golden.
package goldie

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func New(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("fixtures"),
		goldie.WithNameSuffix(".golden"),
	)
}

// Assert compares actual with fixtures/<name>.golden. Run the tests with -update to rewrite the
// fixtures.
func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()

	New(t).Assert(t, name, actual)
}
