package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortVersion(t *testing.T) {
	tests := []struct {
		version string
		commit  string
		want    string
	}{
		{"v1.2.0", "0123456789abcdef", "v1.2.0 (0123456)"},
		{"dev", "0123456789abcdef", "dev-0123456"},
		{"dev-0123456", "0123456789abcdef", "dev-0123456"},
		{"v1.2.0", "unknown", "v1.2.0"},
		{"v1.2.0", "abc", "v1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, shortVersion(tt.version, tt.commit))
		})
	}
}

func TestParseISOTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	assert.True(t, want.Equal(parseISOTime("2024-03-01T12:30:00Z")))
	assert.True(t, want.Equal(parseISOTime("2024-03-01 12:30:00")))
	assert.True(t, parseISOTime("unknown").IsZero())
	assert.True(t, parseISOTime("yesterday").IsZero())
}

func TestLdflagsOverride(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = oldVersion, oldCommit })

	Version = "v0.9.1"
	GitCommit = "fedcba9876543210"

	info := GetBuildInfo()
	assert.Equal(t, "v0.9.1", info.Version)
	assert.Equal(t, "fedcba9876543210", info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Equal(t, "v0.9.1 (fedcba9)", GetShortVersion())
	assert.True(t, IsRelease())
}
