package version

import "fmt"

var (
	Version = "dev"  // ex: v0.1.0
	Commit  = "none" // ex: abcd123
)

// String is the form shown by `bonk --version`.
func String() string {
	return fmt.Sprintf("%s (commit %s)", Version, Commit)
}
