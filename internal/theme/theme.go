// internal/theme/theme.go
// Package theme holds the immutable palette and page settings shared by every
// dashboard surface.
package theme

import "strings"

// Role names a palette slot rather than a concrete color.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleDark      Role = "dark"
	RoleSuccess   Role = "success"
	RoleWarning   Role = "warning"
	RoleDanger    Role = "danger"
	RoleLight     Role = "light"
)

// Palette maps each Role to a hex color.
type Palette struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Dark      string `json:"dark" yaml:"dark"`
	Success   string `json:"success" yaml:"success"`
	Warning   string `json:"warning" yaml:"warning"`
	Danger    string `json:"danger" yaml:"danger"`
	Light     string `json:"light" yaml:"light"`
}

// Page carries the page-level settings of the rendered dashboard.
type Page struct {
	Title    string `json:"title" yaml:"title"`
	Icon     string `json:"icon" yaml:"icon"`
	Layout   string `json:"layout" yaml:"layout"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
}

// Theme is passed by value to every renderer; nothing mutates it after construction.
type Theme struct {
	Palette Palette `json:"palette" yaml:"palette"`
	Page    Page    `json:"page" yaml:"page"`
}

// DefaultPalette returns the storefront palette the dashboard was designed around.
func DefaultPalette() Palette {
	return Palette{
		Primary:   "#FF9900",
		Secondary: "#146EB4",
		Dark:      "#232F3E",
		Success:   "#067D62",
		Warning:   "#F0C14B",
		Danger:    "#B12704",
		Light:     "#EAEDED",
	}
}

// Default returns the default theme.
func Default() Theme {
	return Theme{
		Palette: DefaultPalette(),
		Page: Page{
			Title:    "Amazon Product Success Prediction",
			Icon:     "🛍️",
			Layout:   "wide",
			Subtitle: "Early Review Analytics for Third-Party Sellers | 1.5M Reviews | 471 Products | 2015-2023",
		},
	}
}

// Color resolves a role to its hex value. Unknown roles resolve to Dark.
func (p Palette) Color(r Role) string {
	switch r {
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	case RoleSuccess:
		return p.Success
	case RoleWarning:
		return p.Warning
	case RoleDanger:
		return p.Danger
	case RoleLight:
		return p.Light
	default:
		return p.Dark
	}
}

// WithTitle returns a copy of t with the page title replaced when title is non-blank.
func (t Theme) WithTitle(title string) Theme {
	if strings.TrimSpace(title) != "" {
		t.Page.Title = title
	}
	return t
}
