// Package platform classifies the operating system family of a host or a
// client from the descriptors its environment exposes.
package platform

import "strings"

const macMarker = "mac"

// Environment exposes the descriptors used for classification.
// The boolean result reports whether the descriptor is available at all.
type Environment interface {
	UserAgent() (string, bool)
	Platform() (string, bool)
}

// IsMac reports whether env describes a Mac.
// The user-agent descriptor decides when it is available; the platform
// descriptor is only consulted when it is not. With neither available, or a
// nil env, the answer is false.
func IsMac(env Environment) bool {
	if env == nil {
		return false
	}

	if userAgent, ok := env.UserAgent(); ok {
		return containsMac(userAgent)
	}
	if platform, ok := env.Platform(); ok {
		return containsMac(platform)
	}
	return false
}

// IsHostMac reports whether the current host is a Mac.
// The environment is read on every call.
func IsHostMac() bool {
	return IsMac(HostEnvironment())
}

func containsMac(descriptor string) bool {
	return strings.Contains(strings.ToLower(descriptor), macMarker)
}

// StaticEnvironment holds fixed descriptors; nil means unavailable
type StaticEnvironment struct {
	UserAgentValue *string
	PlatformValue  *string
}

// NewStaticEnvironment builds an environment where empty strings are
// treated as unavailable descriptors.
func NewStaticEnvironment(userAgent, platform string) StaticEnvironment {
	env := StaticEnvironment{}
	if userAgent != "" {
		env.UserAgentValue = &userAgent
	}
	if platform != "" {
		env.PlatformValue = &platform
	}
	return env
}

// UserAgent implements Environment
func (e StaticEnvironment) UserAgent() (string, bool) {
	if e.UserAgentValue == nil {
		return "", false
	}
	return *e.UserAgentValue, true
}

// Platform implements Environment
func (e StaticEnvironment) Platform() (string, bool) {
	if e.PlatformValue == nil {
		return "", false
	}
	return *e.PlatformValue, true
}
