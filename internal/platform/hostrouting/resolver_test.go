package hostrouting

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testPolicy() Policy {
	return NewPolicy(
		"MereAutomaton.club",
		[]string{"www", "api", "admin"},
		[]string{"localhost", "127.0.0.1"},
		[]string{".vercel.app", "netlify.app"},
	)
}

func TestResolveMainHostsPassThroughEveryPath(t *testing.T) {
	policy := testPolicy()
	hosts := []string{"mereautomaton.club", "www.mereautomaton.club", "WWW.MereAutomaton.Club", "mereautomaton.club:443"}
	paths := []string{"", "/", "/sponsor", "/poem/x", "/api/generate-poem"}

	for _, host := range hosts {
		for _, path := range paths {
			got := Resolve(policy, host, path)
			want := Decision{Kind: KindMain, Path: path}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("host=%q path=%q mismatch (-want +got):\n%s", host, path, diff)
			}
		}
	}
}

func TestResolveTenantRootRedirects(t *testing.T) {
	policy := testPolicy()
	for _, label := range []string{"roses", "night-sky", "a1"} {
		got := Resolve(policy, label+".mereautomaton.club", "/")
		want := Decision{Kind: KindTenant, Name: label, Path: "/poem/" + label, Redirect: true}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("label=%q mismatch (-want +got):\n%s", label, diff)
		}

		empty := Resolve(policy, label+".mereautomaton.club", "")
		if !empty.Redirect || empty.Path != "/poem/"+label {
			t.Fatalf("expected empty path to redirect like root, got %+v", empty)
		}
	}
}

func TestResolveTenantNonRootIsNotFound(t *testing.T) {
	policy := testPolicy()
	for _, path := range []string{"/poem/roses", "/sponsor", "/favicon.ico", "/api/poems"} {
		got := Resolve(policy, "roses.mereautomaton.club", path)
		if got.Kind != KindTenant || !got.NotFound || got.Redirect {
			t.Fatalf("path=%q expected tenant not-found, got %+v", path, got)
		}
	}
}

func TestResolveReservedLabels(t *testing.T) {
	policy := testPolicy()
	cases := map[string]string{
		"api.mereautomaton.club":   "api",
		"admin.mereautomaton.club": "admin",
		"www.other.club":           "www",
		"mereautomaton.other.net":  "mereautomaton",
	}
	for host, label := range cases {
		got := Resolve(policy, host, "/anything")
		want := Decision{Kind: KindReserved, Name: label, Path: "/anything"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("host=%q mismatch (-want +got):\n%s", host, diff)
		}
	}
}

func TestResolveDevAndEdgeHostsAreMain(t *testing.T) {
	policy := testPolicy()
	hosts := []string{
		"",
		"localhost",
		"localhost:5173",
		"127.0.0.1:8080",
		"10.1.2.3",
		"[::1]:8080",
		"my-branch.vercel.app",
		"deploy-preview-4.mysite.netlify.app",
		"intranet",
	}
	for _, host := range hosts {
		got := Resolve(policy, host, "/")
		if got.Kind != KindMain || got.Redirect || got.NotFound {
			t.Fatalf("host=%q expected main, got %+v", host, got)
		}
	}
}

func TestResolveLowerCasesTenantName(t *testing.T) {
	got := Resolve(testPolicy(), "Roses.MereAutomaton.CLUB", "/")
	if got.Name != "roses" || got.Path != "/poem/roses" {
		t.Fatalf("expected lower-cased tenant, got %+v", got)
	}
}

func TestResolveForeignDomainUsesFirstLabel(t *testing.T) {
	got := Resolve(testPolicy(), "haiku.example.org", "/")
	if got.Kind != KindTenant || got.Name != "haiku" {
		t.Fatalf("expected tenant haiku, got %+v", got)
	}
}
