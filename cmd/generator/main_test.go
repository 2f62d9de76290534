package main

import (
	"testing"
)

// Smoke test to ensure main honors SKIP_GENERATOR_RUN and does not reach the
// network during test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_GENERATOR_RUN", "1")
	main()
}
