package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetters(t *testing.T) {
	t.Cleanup(func() { Set("dev", "none", "unknown") })

	Set("1.2.3", "abc123", "2026-01-01")

	assert.Equal(t, "1.2.3", Version())
	assert.Equal(t, "abc123", Commit())
	assert.Equal(t, "2026-01-01", Date())
}

func TestEnrichKeepsExplicitCommit(t *testing.T) {
	t.Cleanup(func() { Set("dev", "none", "unknown") })

	Set("1.0.0", "deadbeef", "2026-01-01")
	Enrich()

	assert.Equal(t, "deadbeef", Commit())
}
