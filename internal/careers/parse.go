package careers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Wire shape of the completion response. The prompt spells this out verbatim
// so the model can copy it.
type wireGraph struct {
	CenterNode  wireCenter       `json:"center_node"`
	Connections []wireConnection `json:"connections"`
}

type wireCenter struct {
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Mission      string `json:"mission"`
	PositiveNews string `json:"positive_news"`
	RedFlags     string `json:"red_flags"`
}

type wireConnection struct {
	Name           string    `json:"name"`
	Reason         string    `json:"reason"`
	SubConnections []wireSub `json:"sub_connections,omitempty"`
}

type wireSub struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

func toWire(g *CareerGraph) wireGraph {
	w := wireGraph{
		CenterNode: wireCenter{
			Name:         g.Center.Name,
			Type:         "Degree",
			Mission:      g.Center.Mission,
			PositiveNews: g.Center.PositiveNews,
			RedFlags:     g.Center.RedFlags,
		},
	}
	for _, job := range g.Jobs {
		conn := wireConnection{Name: job.Name, Reason: job.Reason}
		for _, cert := range job.Certifications {
			conn.SubConnections = append(conn.SubConnections, wireSub{Name: cert.Name, Reason: cert.Reason})
		}
		w.Connections = append(w.Connections, conn)
	}
	return w
}

// StripFences removes one leading and one trailing triple-backtick marker,
// with an optional language tag on the opening fence. Text without fences
// passes through untouched.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		rest := s[3:]
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			s = rest[i+1:]
		} else {
			s = strings.TrimPrefix(rest, "json")
		}
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}

// ParseGraph turns raw completion text into a CareerGraph. It tolerates
// code-fence decoration, requires center_node.name and every connection's
// name and reason, and drops any node whose name was already used (same
// name means same node; nothing is merged from the second occurrence).
// Cardinality is not enforced: the requested 5 jobs and 2-3 certifications
// per job are best-effort on the model's side.
func ParseGraph(raw string) (*CareerGraph, error) {
	clean := StripFences(raw)
	var w wireGraph
	if err := json.Unmarshal([]byte(clean), &w); err != nil {
		return nil, &MalformedGraphError{Err: fmt.Errorf("response is not valid JSON: %w", err)}
	}
	if strings.TrimSpace(w.CenterNode.Name) == "" {
		return nil, &MalformedGraphError{Err: errors.New("center_node.name is missing")}
	}

	g := &CareerGraph{
		Center: CenterNode{
			Name:         w.CenterNode.Name,
			Mission:      w.CenterNode.Mission,
			PositiveNews: w.CenterNode.PositiveNews,
			RedFlags:     w.CenterNode.RedFlags,
		},
	}
	seen := map[string]bool{g.Center.Name: true}

	for i, conn := range w.Connections {
		if strings.TrimSpace(conn.Name) == "" {
			return nil, &MalformedGraphError{Err: fmt.Errorf("connections[%d].name is missing", i)}
		}
		if strings.TrimSpace(conn.Reason) == "" {
			return nil, &MalformedGraphError{Err: fmt.Errorf("connections[%d] (%s): reason is missing", i, conn.Name)}
		}
		if seen[conn.Name] {
			continue
		}
		seen[conn.Name] = true

		job := JobNode{Name: conn.Name, Reason: conn.Reason}
		for _, sub := range conn.SubConnections {
			if strings.TrimSpace(sub.Name) == "" {
				continue
			}
			if seen[sub.Name] {
				continue
			}
			seen[sub.Name] = true
			job.Certifications = append(job.Certifications, CertNode{Name: sub.Name, Reason: sub.Reason})
		}
		g.Jobs = append(g.Jobs, job)
	}
	return g, nil
}
