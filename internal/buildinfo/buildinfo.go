package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Short returns a compact build identifier for window titles and logging.
func Short() string {
	return Version
}
