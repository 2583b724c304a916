package careers

import (
	"strings"
	"testing"
)

func TestResolveDetailsCenter(t *testing.T) {
	g := testGraph()

	for _, sel := range []string{"", g.Center.Name} {
		d := ResolveDetails(g, sel)
		if d.Title != g.Center.Name {
			t.Fatalf("sel=%q: title=%q", sel, d.Title)
		}
		if d.Body != g.Center.Mission {
			t.Fatalf("sel=%q: body=%q, want mission", sel, d.Body)
		}
		if d.Footer == "" {
			t.Fatalf("sel=%q: center hint missing", sel)
		}
	}
}

func TestResolveDetailsJob(t *testing.T) {
	g := testGraph()
	job := g.Jobs[0]

	d := ResolveDetails(g, job.Name)
	if d.Body != job.Reason {
		t.Fatalf("body=%q, want job reason", d.Body)
	}
	bullets := strings.Count(d.Footer, "\n- ")
	if bullets != len(job.Certifications) {
		t.Fatalf("bullets=%d, want %d", bullets, len(job.Certifications))
	}
	for _, cert := range job.Certifications {
		if !strings.Contains(d.Footer, cert.Name) {
			t.Fatalf("footer missing cert %q: %q", cert.Name, d.Footer)
		}
	}
}

func TestResolveDetailsCert(t *testing.T) {
	g := testGraph()
	job := g.Jobs[1]
	cert := job.Certifications[0]

	d := ResolveDetails(g, cert.Name)
	if d.Body != cert.Reason {
		t.Fatalf("body=%q, want cert reason", d.Body)
	}
	if !strings.Contains(d.Footer, job.Name) {
		t.Fatalf("footer=%q, want back-reference to %q", d.Footer, job.Name)
	}
}

func TestResolveDetailsUnknownID(t *testing.T) {
	g := testGraph()

	d := ResolveDetails(g, "stale id from a previous graph")
	if d.Body != "Node details not found." {
		t.Fatalf("body=%q, want placeholder", d.Body)
	}
}

func TestResolveDetailsNilGraph(t *testing.T) {
	d := ResolveDetails(nil, "anything")
	if d.Body != "Node details not found." {
		t.Fatalf("body=%q, want placeholder", d.Body)
	}
}

func TestResearchURL(t *testing.T) {
	u := ResearchURL("AI Governance Lead", "Big Tech (FAANG)")
	if !strings.HasPrefix(u, "https://www.google.com/search?q=") {
		t.Fatalf("url=%q", u)
	}
	if strings.ContainsAny(u[len("https://www.google.com/search?q="):], " ()") {
		t.Fatalf("query not escaped: %q", u)
	}
}
