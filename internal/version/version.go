package version

import "fmt"

// Populated at build time, e.g.
//
//	go build -ldflags "-X github.com/PizzaHomicide/reel/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetBuildTime() string {
	return BuildTime
}

// GetVersionInfo is the line printed by `reel -version`
func GetVersionInfo() string {
	if Commit == "" {
		return fmt.Sprintf("reel %s (built %s)", Version, BuildTime)
	}
	return fmt.Sprintf("reel %s, commit %s (built %s)", Version, Commit, BuildTime)
}
