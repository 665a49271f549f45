package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	i := Info{CommitHash: "abcdef123456", BuildTime: "2026-01-02", Version: "v0.4.0"}
	assert.Equal(t, "uibind v0.4.0 (commit abcdef123456, built 2026-01-02)", i.String())
	assert.Equal(t, "abcdef1", i.Short())

	i.Version = "dev"
	assert.Equal(t, "uibind dev (commit abcdef123456, built 2026-01-02)", i.String())

	assert.Equal(t, "abc", Info{CommitHash: "abc"}.Short())
}

func TestTag(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "dev"
	assert.Equal(t, Devel, Tag())

	Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", Tag())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b   string
		want   int
		wantOK bool
	}{
		{"v1.2.3", "v1.2.3", 0, true},
		{"v1.3.0", "v1.2.9", 1, true},
		{"0.9.0", "v1.0.0", -1, true},
		{"v1.0.0-rc.1", "v1.0.0", -1, true},
		{Devel, "v1.0.0", 0, false},
		{"v1.0.0", "dev", 0, false},
	}
	for _, tt := range tests {
		got, ok := Compare(tt.a, tt.b)
		assert.Equal(t, tt.wantOK, ok, "%s vs %s", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.a, tt.b)
	}
}
