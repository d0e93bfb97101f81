// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, keyring entries and CLI branding.
	App = "cinemind"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository hosts the sources and the releases.
	Repository = "cinemind-cli/cinemind"

	// UserAgent is sent with every outgoing request to the catalog and language APIs.
	UserAgent = App + "/" + Version + " (+https://github.com/" + Repository + ")"
)

// Build metadata, injected with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
