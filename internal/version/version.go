// Package version holds the build version, overridden at release time via
// -ldflags "-X github.com/kmilner/schoology-mcp/internal/version.Version=...".
package version

var Version = "dev"
