package careers

import "testing"

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Tracks) != 2 {
		t.Fatalf("tracks=%d, want 2", len(c.Tracks))
	}
	for _, tr := range c.Tracks {
		if tr.CenterNode == "" || tr.Persona == "" {
			t.Fatalf("track %q incomplete", tr.Name)
		}
	}
	if c.Industries[0] != Wildcard || c.RoleFunctions[0] != Wildcard {
		t.Fatalf("catalogs should lead with the %q wildcard", Wildcard)
	}
}

func TestValidateFilters(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	ok := FilterRecord{Track: "AI and Machine Learning", Industry: "Any", RoleFunction: "Data Science"}
	if err := c.ValidateFilters(ok); err != nil {
		t.Fatalf("valid filters rejected: %v", err)
	}

	bad := []FilterRecord{
		{Track: "Underwater Basket Weaving", Industry: "Any", RoleFunction: "Any"},
		{Track: "AI and Machine Learning", Industry: "Hollywood", RoleFunction: "Any"},
		{Track: "AI and Machine Learning", Industry: "Any", RoleFunction: "Wizardry"},
		{},
	}
	for i, f := range bad {
		if err := c.ValidateFilters(f); err == nil {
			t.Fatalf("case %d: invalid filters accepted: %+v", i, f)
		}
	}
}
