package common

// Version information
const (
	// Version is the current application version
	Version = "dev"

	// Commit is the git commit hash
	Commit = "unknown"
)

// VersionString returns the version with the commit it was built from
func VersionString() string {
	return Version + " (commit " + Commit + ")"
}
