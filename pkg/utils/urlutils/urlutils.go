package urlutils

import (
	"strconv"
	"strings"
)

// Support ticketing URL pieces
const (
	SecureScheme        = "https://"
	SupportDomainSuffix = ".zendesk.com/agent/tickets"
)

// DeriveSupportURL builds the ticketing URL for the tenant behind an API host.
// The host is cut at its first '.', so "acme.example.com" becomes
// "https://acme.zendesk.com/agent/tickets". A host without any '.' is used
// whole. Schemes are not stripped before the cut: "https://acme.example.com"
// already starts with https and is returned without a second prefix.
func DeriveSupportURL(apiHost string) string {
	subdomain, _, _ := strings.Cut(apiHost, ".")
	supportURL := subdomain + SupportDomainSuffix

	if strings.HasPrefix(supportURL, "https") {
		return supportURL
	}
	return SecureScheme + supportURL
}

// TicketURL returns the deep link to a single ticket
func TicketURL(apiHost string, ticketID int64) string {
	return DeriveSupportURL(apiHost) + "/" + strconv.FormatInt(ticketID, 10)
}
