// Package version reports build metadata for the consolidator binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time, e.g.
// go build -ldflags "-X 'consolidator/pkg/version.Version=0.3.0' -X 'consolidator/pkg/version.Commit=$(git rev-parse --short HEAD)'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is the build metadata of the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get returns the metadata of the running binary. Values not injected via
// -ldflags are filled from the module build info when the binary carries it.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = info.withBuildInfo(bi)
	}
	return info
}

func (i Info) withBuildInfo(bi *debug.BuildInfo) Info {
	if i.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.GitCommit == "none" && s.Value != "" {
				i.GitCommit = s.Value
				if len(i.GitCommit) > 7 {
					i.GitCommit = i.GitCommit[:7]
				}
			}
		case "vcs.time":
			if i.BuildTime == "unknown" && s.Value != "" {
				i.BuildTime = s.Value
			}
		}
	}
	return i
}

// String renders Info on one line:
// consolidator 0.3.0 (commit abcdefg, built 2026-03-01T10:00:00Z, go1.23.1 linux/amd64)
func (i Info) String() string {
	return fmt.Sprintf("consolidator %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
