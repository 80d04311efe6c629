package platform

import (
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Environment variables read by the host environment
const (
	DefaultUserAgentEnv = "CRMKIT_USER_AGENT"
	DefaultPlatformEnv  = "CRMKIT_PLATFORM"
)

// osDisplayNames maps GOOS values to the names browsers report
var osDisplayNames = map[string]string{
	"darwin":  "macOS",
	"ios":     "iOS",
	"windows": "Windows",
	"linux":   "Linux",
	"android": "Android",
	"freebsd": "FreeBSD",
}

// EnvVarEnvironment reads descriptors from environment variables.
// An unset variable is unavailable; a set but empty one is available.
type EnvVarEnvironment struct {
	UserAgentVar string
	PlatformVar  string
}

// UserAgent implements Environment
func (e EnvVarEnvironment) UserAgent() (string, bool) {
	if e.UserAgentVar == "" {
		return "", false
	}
	return os.LookupEnv(e.UserAgentVar)
}

// Platform implements Environment
func (e EnvVarEnvironment) Platform() (string, bool) {
	if e.PlatformVar == "" {
		return "", false
	}
	return os.LookupEnv(e.PlatformVar)
}

// hostEnvironment takes the user agent from an environment variable and
// describes the platform from the running host.
type hostEnvironment struct {
	vars EnvVarEnvironment
}

// HostEnvironment returns the environment of the current process using the
// default variable names.
func HostEnvironment() Environment {
	return NewHostEnvironment(DefaultUserAgentEnv, DefaultPlatformEnv)
}

// NewHostEnvironment returns a host environment reading the given variables.
// The platform variable overrides host detection when set.
func NewHostEnvironment(userAgentVar, platformVar string) Environment {
	return hostEnvironment{vars: EnvVarEnvironment{UserAgentVar: userAgentVar, PlatformVar: platformVar}}
}

// UserAgent implements Environment
func (h hostEnvironment) UserAgent() (string, bool) {
	return h.vars.UserAgent()
}

// Platform implements Environment
func (h hostEnvironment) Platform() (string, bool) {
	if platform, ok := h.vars.Platform(); ok {
		return platform, true
	}
	return HostDescriptor(), true
}

// HostDescriptor describes the running host as "<OS> <version> <arch>",
// e.g. "macOS 14.4 arm64". It falls back to the runtime values when host
// information is unavailable.
func HostDescriptor() string {
	info, err := host.Info()
	if err != nil || info.OS == "" {
		return DescribeOS(runtime.GOOS, "", runtime.GOARCH)
	}

	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}
	return DescribeOS(info.OS, info.PlatformVersion, arch)
}

// DescribeOS formats a descriptor from a GOOS-style name
func DescribeOS(goos, version, arch string) string {
	name, ok := osDisplayNames[strings.ToLower(goos)]
	if !ok {
		name = goos
	}

	parts := []string{name}
	for _, p := range []string{version, arch} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
