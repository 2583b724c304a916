package careers

import (
	"net/url"
	"strings"
)

// Details is what the details panel shows for the current selection.
type Details struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Footer string `json:"footer"`
}

const centerHint = "Select a red node (Job) to see details, or a blue diamond (Cert) for requirements."

// ResolveDetails maps a selected node id back onto the graph. No selection
// and the center's own name both resolve to the center. Unknown ids return a
// placeholder rather than failing: the UI can hand us a stale id from a
// previous graph.
func ResolveDetails(g *CareerGraph, selectedID string) Details {
	if g == nil {
		return Details{Title: selectedID, Body: "Node details not found."}
	}
	if selectedID == "" || selectedID == g.Center.Name {
		return Details{Title: g.Center.Name, Body: g.Center.Mission, Footer: centerHint}
	}
	for _, job := range g.Jobs {
		if job.Name == selectedID {
			var b strings.Builder
			b.WriteString("Top Recommended Certifications:")
			for _, cert := range job.Certifications {
				b.WriteString("\n- " + cert.Name)
			}
			return Details{Title: job.Name, Body: job.Reason, Footer: b.String()}
		}
	}
	for _, job := range g.Jobs {
		for _, cert := range job.Certifications {
			if cert.Name == selectedID {
				return Details{
					Title:  cert.Name,
					Body:   cert.Reason,
					Footer: "Critical credibility booster for: " + job.Name,
				}
			}
		}
	}
	return Details{Title: selectedID, Body: "Node details not found."}
}

// ResearchURL is the external search link shown next to a non-center
// selection.
func ResearchURL(nodeName, industry string) string {
	q := url.QueryEscape(nodeName + " " + industry + " certification requirements")
	return "https://www.google.com/search?q=" + q
}
