package careers

import "fmt"

// Payload contract of the graph-rendering widget: flat node and edge lists
// plus a display config. Field names follow the widget's JSON schema.

type VisFont struct {
	Color       string `json:"color"`
	StrokeWidth int    `json:"strokeWidth"`
	StrokeColor string `json:"strokeColor"`
}

type VisNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Size  int     `json:"size"`
	Color string  `json:"color"`
	Shape string  `json:"shape,omitempty"`
	Font  VisFont `json:"font"`
	Title string  `json:"title,omitempty"`
}

type VisEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Color  string `json:"color"`
	Width  int    `json:"width"`
	Dashes bool   `json:"dashes,omitempty"`
}

type VisConfig struct {
	Width                 int    `json:"width"`
	Height                int    `json:"height"`
	Directed              bool   `json:"directed"`
	Physics               bool   `json:"physics"`
	Hierarchical          bool   `json:"hierarchical"`
	NodeHighlightBehavior bool   `json:"nodeHighlightBehavior"`
	HighlightColor        string `json:"highlightColor"`
	Collapsible           bool   `json:"collapsible"`
	BackgroundColor       string `json:"backgroundColor"`
}

type VisPayload struct {
	Nodes  []VisNode `json:"nodes"`
	Edges  []VisEdge `json:"edges"`
	Config VisConfig `json:"config"`
}

const (
	centerColor     = "#B19CD9"
	jobColor        = "#FF4B4B"
	certColor       = "#00C0F2"
	jobEdgeColor    = "#808080"
	certEdgeColor   = "#404040"
	highlightColor  = "#F7A7A6"
	backgroundColor = "#0e1117"
)

var highContrastFont = VisFont{Color: "white", StrokeWidth: 4, StrokeColor: "black"}

// BuildVisPayload flattens a career graph into the widget contract. Node
// names are already unique after parsing, so ids are the names themselves.
func BuildVisPayload(g *CareerGraph) VisPayload {
	p := VisPayload{
		Config: VisConfig{
			Width:                 1200,
			Height:                600,
			Directed:              true,
			Physics:               true,
			Hierarchical:          false,
			NodeHighlightBehavior: true,
			HighlightColor:        highlightColor,
			Collapsible:           true,
			BackgroundColor:       backgroundColor,
		},
	}
	if g == nil {
		return p
	}

	p.Nodes = append(p.Nodes, VisNode{
		ID:    g.Center.Name,
		Label: g.Center.Name,
		Size:  45,
		Color: centerColor,
		Shape: "dot",
		Font:  highContrastFont,
	})

	for _, job := range g.Jobs {
		p.Nodes = append(p.Nodes, VisNode{
			ID:    job.Name,
			Label: job.Name,
			Size:  30,
			Color: jobColor,
			Font:  highContrastFont,
			Title: job.Reason,
		})
		p.Edges = append(p.Edges, VisEdge{
			Source: g.Center.Name,
			Target: job.Name,
			Color:  jobEdgeColor,
			Width:  3,
		})

		for _, cert := range job.Certifications {
			p.Nodes = append(p.Nodes, VisNode{
				ID:    cert.Name,
				Label: cert.Name,
				Size:  20,
				Color: certColor,
				Shape: "diamond",
				Font:  highContrastFont,
				Title: fmt.Sprintf("Cert for %s: %s", job.Name, cert.Reason),
			})
			p.Edges = append(p.Edges, VisEdge{
				Source: job.Name,
				Target: cert.Name,
				Color:  certEdgeColor,
				Width:  1,
				Dashes: true,
			})
		}
	}
	return p
}
