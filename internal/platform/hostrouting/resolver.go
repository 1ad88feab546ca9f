package hostrouting

import (
	"net"
	"strings"
)

// Kind classifies a resolved host.
type Kind int

const (
	KindMain Kind = iota
	KindReserved
	KindTenant
)

func (k Kind) String() string {
	switch k {
	case KindReserved:
		return "reserved"
	case KindTenant:
		return "tenant"
	default:
		return "main"
	}
}

// Decision is the routing outcome for one request.
type Decision struct {
	Kind Kind
	// Name is the leading label for Reserved and Tenant decisions.
	Name string
	// Path is the path to dispatch (Main/Reserved) or redirect to (Tenant root).
	Path     string
	Redirect bool
	NotFound bool
}

// Resolve maps a host header and request path to a routing decision.
// Tenants serve exactly one page: their root redirects to /poem/{name} and
// every other path is not found.
func Resolve(policy Policy, host string, path string) Decision {
	host = normalizeHost(host)

	if host == "" || !strings.Contains(host, ".") || net.ParseIP(host) != nil ||
		policy.IsMainHost(host) || policy.IsDevHost(host) {
		return Decision{Kind: KindMain, Path: path}
	}

	label, _, _ := strings.Cut(host, ".")
	if policy.IsReservedLabel(label) {
		return Decision{Kind: KindReserved, Name: label, Path: path}
	}

	if path == "" || path == "/" {
		return Decision{Kind: KindTenant, Name: label, Path: "/poem/" + label, Redirect: true}
	}
	return Decision{Kind: KindTenant, Name: label, Path: path, NotFound: true}
}

// normalizeHost lower-cases and drops a trailing :port.
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(strings.Trim(host, "[]"), ".")
}
