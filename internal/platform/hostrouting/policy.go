// Package hostrouting decides, from the Host header alone, whether a request
// targets the main site or a tenant poem subdomain.
//
// Resolution is a pure function of (Policy, host, path) so it can be tested
// without a server or environment.
package hostrouting

import "strings"

// Policy is the explicit host table the resolver consults.
type Policy struct {
	// CanonicalDomain is the bare site domain, e.g. "mereautomaton.club".
	CanonicalDomain string
	// ReservedLabels are leading labels that never name a tenant.
	// The canonical domain's own first label is always reserved as well.
	ReservedLabels []string
	// DevHosts are exact hostnames treated as the main site (loopback names).
	DevHosts []string
	// PreviewSuffixes are wildcard preview-platform domains, e.g. ".vercel.app".
	PreviewSuffixes []string
}

// NewPolicy normalizes host values to lower case.
func NewPolicy(canonical string, reserved, devHosts, previewSuffixes []string) Policy {
	return Policy{
		CanonicalDomain: normalizeHost(canonical),
		ReservedLabels:  lowerAll(reserved),
		DevHosts:        lowerAll(devHosts),
		PreviewSuffixes: lowerAll(previewSuffixes),
	}
}

// IsMainHost reports whether host is the canonical domain or its www variant.
func (p Policy) IsMainHost(host string) bool {
	return host == p.CanonicalDomain || host == "www."+p.CanonicalDomain
}

// IsDevHost reports whether host is a loopback name or a preview deployment.
func (p Policy) IsDevHost(host string) bool {
	for _, dev := range p.DevHosts {
		if host == dev {
			return true
		}
	}
	for _, suffix := range p.PreviewSuffixes {
		if suffix == "" {
			continue
		}
		if !strings.HasPrefix(suffix, ".") {
			suffix = "." + suffix
		}
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

// IsReservedLabel reports whether label can never be a tenant name.
func (p Policy) IsReservedLabel(label string) bool {
	if label == p.siteLabel() {
		return true
	}
	for _, reserved := range p.ReservedLabels {
		if label == reserved {
			return true
		}
	}
	return false
}

// SiteLabel is the first label of the canonical domain ("mereautomaton").
func (p Policy) SiteLabel() string {
	return p.siteLabel()
}

func (p Policy) siteLabel() string {
	label, _, _ := strings.Cut(p.CanonicalDomain, ".")
	return label
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
