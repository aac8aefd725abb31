package buildinfo

import "fmt"

// Set with -ldflags "-X timecalc/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("timecalc %s (commit=%s, date=%s)", Version, Commit, Date)
}
