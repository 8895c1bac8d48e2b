package models

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gomendel/domain/trait"
)

// TraitSummary is the catalog view of a trait. DescriptionHTML is rendered
// from the markdown description so the web client does not need a markdown
// parser.
type TraitSummary struct {
	trait.Trait
	DescriptionHTML string `json:"description_html,omitempty"`
}

// NewTraitSummary renders the trait's markdown description into HTML.
func NewTraitSummary(t trait.Trait) TraitSummary {
	return TraitSummary{
		Trait:           t,
		DescriptionHTML: renderMarkdown(t.Description),
	}
}

// TraitListResponse is the GET /api/traits reply.
type TraitListResponse struct {
	Traits []TraitSummary `json:"traits"`
	Count  int            `json:"count"`
}

// ErrorResponse is the JSON error envelope shared by every public endpoint.
type ErrorResponse struct {
	Error string   `json:"error"`
	Code  string   `json:"code,omitempty"`
	Errs  []string `json:"errors,omitempty"`
}

func renderMarkdown(src string) string {
	if src == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return strings.TrimSpace(string(markdown.ToHTML([]byte(src), p, renderer)))
}
