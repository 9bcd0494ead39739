package view

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Signals is the client-side state the page keeps in Datastar signals.
// Filters carries the canonical query string; Search is bound to the
// search box.
type Signals struct {
	Filters string `json:"filters"`
	Search  string `json:"search"`
}

type Option struct {
	Value   string
	Label   string
	Checked bool
}

// Page is everything the directory page renders.
type Page struct {
	Signals     Signals
	Listing     *dto.DoctorListResponse
	Suggestions []dto.SuggestionResponse
	Modes       []Option
	Specialties []Option
	Sorts       []Option
}

// NewPage derives the sidebar options from state.
func NewPage(state entity.QueryState, query string, listing *dto.DoctorListResponse, suggestions []dto.SuggestionResponse) *Page {
	p := &Page{
		Signals:     Signals{Filters: query, Search: state.Name},
		Listing:     listing,
		Suggestions: suggestions,
	}

	for _, m := range entity.ConsultationModes {
		p.Modes = append(p.Modes, Option{Value: m, Label: m, Checked: strings.EqualFold(m, state.Mode)})
	}
	for _, s := range entity.Specialties {
		p.Specialties = append(p.Specialties, Option{Value: s, Label: s, Checked: state.HasSpecialty(s)})
	}
	p.Sorts = []Option{
		{Value: string(entity.SortByFees), Label: "Fees (low to high)", Checked: state.Sort == entity.SortByFees},
		{Value: string(entity.SortByExperience), Label: "Experience (high to low)", Checked: state.Sort == entity.SortByExperience},
	}

	return p
}

// SignalsJSON is the data-signals attribute value.
func (p *Page) SignalsJSON() (string, error) {
	b, err := json.Marshal(p.Signals)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// RenderPage writes the full HTML document.
func RenderPage(w io.Writer, p *Page) error {
	return templates.ExecuteTemplate(w, "page", p)
}

// Fragment renders one named partial, e.g. "results", for an element patch.
func Fragment(name string, p *Page) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, p); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
