// Package misc keeps build time information about the program.
package misc

// Set by the linker: -X uitree/misc.version=... -X uitree/misc.gitHash=...
var (
	appName = "uitree"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
