package theme

import "testing"

func TestPaletteColorResolvesRoles(t *testing.T) {
	p := DefaultPalette()
	cases := map[Role]string{
		RolePrimary:   "#FF9900",
		RoleSecondary: "#146EB4",
		RoleSuccess:   "#067D62",
		RoleWarning:   "#F0C14B",
		RoleDanger:    "#B12704",
		RoleLight:     "#EAEDED",
		RoleDark:      "#232F3E",
		Role("nope"):  "#232F3E",
	}
	for role, want := range cases {
		if got := p.Color(role); got != want {
			t.Fatalf("Color(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestWithTitleCopies(t *testing.T) {
	base := Default()
	changed := base.WithTitle("Custom")
	if changed.Page.Title != "Custom" {
		t.Fatalf("expected custom title, got %q", changed.Page.Title)
	}
	if base.Page.Title == "Custom" {
		t.Fatal("WithTitle mutated the receiver")
	}
	if got := base.WithTitle("   ").Page.Title; got != base.Page.Title {
		t.Fatalf("blank title should be ignored, got %q", got)
	}
}
