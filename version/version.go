package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/teranos/pseudocode/catalog"
)

// Build information. These variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/teranos/pseudocode/version.CommitHash=$(git rev-parse HEAD)"
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// LSPVersion is the Language Server Protocol revision served
const LSPVersion = "3.16"

// Info contains version and build information
type Info struct {
	CommitHash string         `json:"commit_hash"`
	BuildTime  string         `json:"build_time"`
	Version    string         `json:"version"`
	GoVersion  string         `json:"go_version"`
	Platform   string         `json:"platform"`
	LSP        string         `json:"lsp"`
	Commands   map[string]int `json:"commands"` // distinct catalog commands per mode
}

// Get returns the current version information
func Get() Info {
	commands := make(map[string]int)
	for _, mode := range catalog.Modes() {
		commands[string(mode)] = catalog.Count(mode)
	}

	info := Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		LSP:        LSPVersion,
		Commands:   commands,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = info.withBuildInfo(bi)
	}
	return info
}

// withBuildInfo fills fields the ldflags left at their defaults from the
// module and VCS stamp, as set by go install and go build in a checkout
func (i Info) withBuildInfo(bi *debug.BuildInfo) Info {
	if i.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}

	var revision, modified string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			if i.BuildTime == "unknown" {
				i.BuildTime = s.Value
			}
		case "vcs.modified":
			modified = s.Value
		}
	}
	if i.CommitHash == "dev" && revision != "" {
		i.CommitHash = revision
		if modified == "true" {
			i.CommitHash += "-dirty"
		}
	}
	return i
}

// String returns a human-readable version string
func (i Info) String() string {
	name := "pseudocode dev"
	if i.Version != "dev" {
		name = "pseudocode " + i.Version
	}
	return fmt.Sprintf("%s (commit %s, built %s, %s)", name, i.Short(), i.BuildTime, i.Platform)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
