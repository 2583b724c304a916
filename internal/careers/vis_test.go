package careers

import (
	"fmt"
	"testing"
)

func fullGraph() *CareerGraph {
	g := &CareerGraph{Center: CenterNode{Name: "Purdue Policy Grad", Mission: "m"}}
	for i := 0; i < 5; i++ {
		job := JobNode{Name: fmt.Sprintf("Job %d", i), Reason: "fits"}
		for j := 0; j < 2; j++ {
			job.Certifications = append(job.Certifications, CertNode{
				Name:   fmt.Sprintf("Cert %d-%d", i, j),
				Reason: "helps",
			})
		}
		g.Jobs = append(g.Jobs, job)
	}
	return g
}

func TestBuildVisPayloadCounts(t *testing.T) {
	g := fullGraph()
	p := BuildVisPayload(g)

	if len(p.Nodes) != 16 {
		t.Fatalf("nodes=%d, want 16", len(p.Nodes))
	}
	if len(p.Edges) != 15 {
		t.Fatalf("edges=%d, want 15", len(p.Edges))
	}
	if len(p.Nodes) != g.NodeCount() || len(p.Edges) != g.EdgeCount() {
		t.Fatalf("payload counts diverge from graph counts")
	}
}

func TestBuildVisPayloadLayers(t *testing.T) {
	p := BuildVisPayload(testGraph())

	center := p.Nodes[0]
	if center.Size != 45 || center.Shape != "dot" || center.Color != centerColor {
		t.Fatalf("center node styling off: %+v", center)
	}

	var jobs, certs int
	for _, n := range p.Nodes[1:] {
		switch n.Shape {
		case "diamond":
			certs++
			if n.Size != 20 || n.Color != certColor {
				t.Fatalf("cert node styling off: %+v", n)
			}
		default:
			jobs++
			if n.Size != 30 || n.Color != jobColor {
				t.Fatalf("job node styling off: %+v", n)
			}
		}
	}
	if jobs != 2 || certs != 3 {
		t.Fatalf("jobs=%d certs=%d", jobs, certs)
	}
}

func TestBuildVisPayloadEdges(t *testing.T) {
	g := testGraph()
	p := BuildVisPayload(g)

	for _, e := range p.Edges {
		if e.Source == g.Center.Name {
			if e.Dashes || e.Width != 3 {
				t.Fatalf("center edge styling off: %+v", e)
			}
			continue
		}
		if !e.Dashes || e.Width != 1 {
			t.Fatalf("cert edge styling off: %+v", e)
		}
	}
}

func TestBuildVisPayloadNilGraph(t *testing.T) {
	p := BuildVisPayload(nil)
	if len(p.Nodes) != 0 || len(p.Edges) != 0 {
		t.Fatalf("nil graph should yield empty payload")
	}
	if p.Config.Width == 0 || p.Config.BackgroundColor == "" {
		t.Fatalf("config should still be populated")
	}
}
