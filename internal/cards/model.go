package cards

import "strings"

// Contact is the structured data printed on a card. Every field is optional;
// empty fields are left off the layout.
type Contact struct {
	Name     string `json:"name"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Address  string `json:"address"`
}

// Style selects how a card looks.
type Style struct {
	Template  string `json:"template"`
	Palette   string `json:"color_scheme"`
	Font      string `json:"font_family"`
	IncludeQR bool   `json:"include_qr"`
}

// Row is one batch input line: a contact plus optional per-record overrides.
// Empty overrides defer to the batch defaults.
type Row struct {
	Contact
	Template  string `json:"template"`
	Palette   string `json:"color_scheme"`
	IncludeQR string `json:"include_qr"`
}

// Resolve merges the row's overrides over def.
func (r Row) Resolve(def Style) Style {
	s := def
	if v := strings.TrimSpace(r.Template); v != "" {
		s.Template = v
	}
	if v := strings.TrimSpace(r.Palette); v != "" {
		s.Palette = v
	}
	if v := strings.ToLower(strings.TrimSpace(r.IncludeQR)); v != "" {
		s.IncludeQR = v == "true" || v == "1" || v == "yes"
	}
	return s
}
