package careers

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildPrompt renders the instruction block for one fetch. Deterministic in
// its inputs. Only catalog members are ever interpolated here; the example
// document goes through the JSON encoder so every value lands as escaped
// plain text.
func BuildPrompt(tr Track, f FilterRecord) string {
	var b strings.Builder

	b.WriteString("You are a Career Strategist specialized in the Purdue Masters of AI program.\n\n")
	b.WriteString(strings.TrimSpace(tr.Persona))
	b.WriteString("\n\nUSER CONSTRAINTS:\n")
	fmt.Fprintf(&b, "- Target Industry: %s\n", f.Industry)
	fmt.Fprintf(&b, "- Preferred Role Function: %s\n\n", f.RoleFunction)

	b.WriteString("TASK:\n")
	fmt.Fprintf(&b, "1. CENTER NODE: %q\n", tr.CenterNode)
	fmt.Fprintf(&b, "2. LAYER 1 (Job Titles): GENERATE 5 distinct job titles that fit the %q profile within the %s industry.\n", tr.Name, f.Industry)
	b.WriteString("   - BE CREATIVE: Look for modern, emerging titles (e.g., \"AI Audit Manager\" or \"ML Ops Engineer\").\n")
	b.WriteString("3. LAYER 2 (Certifications): For EACH job title, GENERATE 2-3 specific, high-value certifications that would help a candidate land THAT specific job.\n")
	b.WriteString("   - CRITICAL: The certifications must be relevant to the specific job node.\n\n")

	b.WriteString("OUTPUT JSON STRUCTURE:\n")
	b.WriteString(exampleDocument(tr, f))
	b.WriteString("\n\nReturn ONLY the JSON document, nothing else.")

	return b.String()
}

// exampleDocument is the literal output-shape example embedded in every
// prompt, with the center node already filled in for the selected track.
func exampleDocument(tr Track, f FilterRecord) string {
	doc := wireGraph{
		CenterNode: wireCenter{
			Name:         tr.CenterNode,
			Type:         "Degree",
			Mission:      fmt.Sprintf("Career Map for the %s track in %s.", tr.Name, f.Industry),
			PositiveNews: "Why this degree profile is valuable right now.",
			RedFlags:     "One skill gap to watch out for.",
		},
		Connections: []wireConnection{
			{
				Name:   "Generated Job Title",
				Reason: "Why this fits the degree profile?",
				SubConnections: []wireSub{
					{Name: "Specific Cert A", Reason: "Why this cert?"},
					{Name: "Specific Cert B", Reason: "Why this cert?"},
				},
			},
		},
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}
