package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, "3.16", info.LSP)
	assert.Positive(t, info.Commands["pseudocode"])
	assert.Positive(t, info.Commands["math"])
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
}

func TestString(t *testing.T) {
	info := Info{CommitHash: "0123456789abcdef", BuildTime: "2026-01-02", Version: "v0.3.0", Platform: "linux/amd64"}
	assert.Equal(t, "pseudocode v0.3.0 (commit 0123456, built 2026-01-02, linux/amd64)", info.String())

	info.Version = "dev"
	info.CommitHash = "dev"
	assert.Equal(t, "pseudocode dev (commit dev, built 2026-01-02, linux/amd64)", info.String())
}

func TestWithBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/teranos/pseudocode", Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	t.Run("fills defaults", func(t *testing.T) {
		info := Info{CommitHash: "dev", BuildTime: "unknown", Version: "dev"}.withBuildInfo(bi)
		assert.Equal(t, "v0.4.1", info.Version)
		assert.Equal(t, "fedcba9876543210-dirty", info.CommitHash)
		assert.Equal(t, "2026-03-04T05:06:07Z", info.BuildTime)
		assert.Equal(t, "fedcba9", info.Short())
	})

	t.Run("ldflags win", func(t *testing.T) {
		info := Info{CommitHash: "0123456789", BuildTime: "2026-01-02", Version: "v1.0.0"}.withBuildInfo(bi)
		assert.Equal(t, "v1.0.0", info.Version)
		assert.Equal(t, "0123456789", info.CommitHash)
		assert.Equal(t, "2026-01-02", info.BuildTime)
	})

	t.Run("devel module version is ignored", func(t *testing.T) {
		info := Info{CommitHash: "dev", BuildTime: "unknown", Version: "dev"}.withBuildInfo(&debug.BuildInfo{
			Main: debug.Module{Version: "(devel)"},
		})
		assert.Equal(t, "dev", info.Version)
		assert.Equal(t, "dev", info.CommitHash)
	})
}
