package careers

import "encoding/json"

// CenterNode is the degree node at the root of every career graph.
type CenterNode struct {
	Name         string `json:"name"`
	Mission      string `json:"mission"`
	PositiveNews string `json:"positive_news"`
	RedFlags     string `json:"red_flags"`
}

// CertNode is a certification recommended for one specific job.
type CertNode struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// JobNode is a first-layer job title with its certification children.
type JobNode struct {
	Name           string     `json:"name"`
	Reason         string     `json:"reason"`
	Certifications []CertNode `json:"certifications,omitempty"`
}

// CareerGraph is a rooted tree of depth two: degree center, job titles,
// certifications. Node names are unique across all three layers.
type CareerGraph struct {
	Center CenterNode `json:"center_node"`
	Jobs   []JobNode  `json:"job_nodes"`
}

func (g *CareerGraph) NodeCount() int {
	n := 1
	for _, job := range g.Jobs {
		n += 1 + len(job.Certifications)
	}
	return n
}

func (g *CareerGraph) EdgeCount() int {
	n := 0
	for _, job := range g.Jobs {
		n += 1 + len(job.Certifications)
	}
	return n
}

// Serialize renders the graph in the wire shape the completion service is
// asked to produce, so serialize-then-parse round-trips.
func (g *CareerGraph) Serialize() ([]byte, error) {
	return json.MarshalIndent(toWire(g), "", "  ")
}
