package platform

import (
	"net/http"
	"strings"
)

// Headers read by RequestEnvironment
const (
	UserAgentHeader = "User-Agent"
	PlatformHeader  = "Sec-CH-UA-Platform"
)

// RequestEnvironment describes the client behind r. A header that is absent
// is unavailable; a header that is present but empty is available.
func RequestEnvironment(r *http.Request) StaticEnvironment {
	env := StaticEnvironment{}
	if r == nil {
		return env
	}

	if values := r.Header.Values(UserAgentHeader); len(values) > 0 {
		ua := values[0]
		env.UserAgentValue = &ua
	}
	if values := r.Header.Values(PlatformHeader); len(values) > 0 {
		// Client hints are sent as structured-field strings: "macOS"
		p := strings.Trim(values[0], `"`)
		env.PlatformValue = &p
	}
	return env
}
