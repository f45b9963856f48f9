// Package view renders the HTML dashboard.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ndewijer/CryptoShield-Backend/internal/model"
)

//go:embed templates/*.html content/*.md
var assets embed.FS

// Option is a select option on the profile form.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Page is the data passed to the dashboard template.
type Page struct {
	Profile     model.InvestorProfile
	CapitalMin  int64
	CapitalMax  int64
	CapitalStep int64
	Risks       []Option
	Goals       []Option
	FieldErrors map[string]string
	Error       string
	Dashboard   *Dashboard
	Education   []Tab
}

// Tab is one educational section rendered from markdown.
type Tab struct {
	ID    string
	Title string
	Body  template.HTML
}

// Renderer holds the parsed page template and the pre-rendered static tabs.
// It is immutable after construction and safe for concurrent use.
type Renderer struct {
	page       *template.Template
	risk       *texttemplate.Template
	md         goldmark.Markdown
	howItWorks template.HTML
	nigeriaTab template.HTML
}

// NewRenderer parses the embedded templates and renders the static markdown.
func NewRenderer() (*Renderer, error) {
	page, err := template.New("dashboard.html").ParseFS(assets, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	risk, err := texttemplate.ParseFS(assets, "content/risk_protection.md")
	if err != nil {
		return nil, fmt.Errorf("failed to parse risk protection content: %w", err)
	}

	r := &Renderer{
		page: page,
		risk: risk,
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}

	if r.howItWorks, err = r.markdownFile("content/how_it_works.md"); err != nil {
		return nil, err
	}
	if r.nigeriaTab, err = r.markdownFile("content/nigerian_context.md"); err != nil {
		return nil, err
	}

	return r, nil
}

// Render writes the dashboard page. When p.Dashboard is set the risk tab is
// filled in with its figures.
func (r *Renderer) Render(w io.Writer, p Page) error {
	p.Education = []Tab{{ID: "how", Title: "How the analysis works", Body: r.howItWorks}}

	if p.Dashboard != nil {
		var buf bytes.Buffer
		if err := r.risk.Execute(&buf, p.Dashboard); err != nil {
			return fmt.Errorf("failed to render risk protection content: %w", err)
		}
		body, err := r.markdown(buf.Bytes())
		if err != nil {
			return err
		}
		p.Education = append(p.Education, Tab{ID: "risk", Title: "Risk protection", Body: body})
	}

	p.Education = append(p.Education, Tab{ID: "context", Title: "Nigerian context", Body: r.nigeriaTab})

	return r.page.Execute(w, p)
}

func (r *Renderer) markdownFile(name string) (template.HTML, error) {
	src, err := assets.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return r.markdown(src)
}

// markdown converts trusted, embedded markdown. goldmark escapes raw HTML by default.
func (r *Renderer) markdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	//nolint:gosec // G203: output of goldmark with unsafe HTML disabled
	return template.HTML(buf.String()), nil
}

// RiskOptions builds the risk tolerance select options.
func RiskOptions(selected model.RiskTolerance) []Option {
	opts := make([]Option, len(model.RiskTolerances))
	for i, r := range model.RiskTolerances {
		opts[i] = Option{Value: string(r), Label: r.Label(), Selected: r == selected}
	}
	return opts
}

// GoalOptions builds the goal select options.
func GoalOptions(selected model.Goal) []Option {
	opts := make([]Option, len(model.Goals))
	for i, g := range model.Goals {
		opts[i] = Option{Value: string(g), Label: g.Label(), Selected: g == selected}
	}
	return opts
}
