// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// StatusKind selects how a status message is styled.
type StatusKind string

const (
	StatusNone    StatusKind = ""
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status is a one-line message shown under a form or table.
type Status struct {
	Kind    StatusKind
	Message string
}

// GeneratorPageViewModel holds presentation-ready data for the generator page.
type GeneratorPageViewModel struct {
	CSRFToken string
	SeedText  string
	Password  string
	Length    int
	Status    Status
}

// PasswordRowViewModel is one row of the saved passwords table.
type PasswordRowViewModel struct {
	SeedText  string
	Password  string
	CreatedAt string
}

// SortHeaderViewModel is a clickable column heading that re-sorts the table.
type SortHeaderViewModel struct {
	Label  string
	Href   string
	Active bool
	// Arrow is the direction indicator for the active column, empty otherwise.
	Arrow string
}

// SavedPageViewModel holds presentation-ready data for the saved passwords page.
type SavedPageViewModel struct {
	Search        string
	Sort          string
	Order         string
	SeedHeader    SortHeaderViewModel
	CreatedHeader SortHeaderViewModel
	Rows          []PasswordRowViewModel
	Status        Status
}

// AboutPageViewModel holds the sanitized HTML body of the about page.
type AboutPageViewModel struct {
	BodyHTML string
}
