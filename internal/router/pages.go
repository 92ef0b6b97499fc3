package router

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed pages/*.md
var pagesFS embed.FS

// Page routes for the built-in content.
const (
	RouteHome     = "/"
	RouteAbout    = "/about"
	RouteProjects = "/projects"
	RouteContact  = "/contact"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderMarkdown converts markdown source to HTML.
func RenderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("error parsing markdown: %w", err)
	}
	return buf.String(), nil
}

// MarkdownProducer renders src once and returns a producer serving the
// cached HTML.
func MarkdownProducer(src []byte) (Producer, error) {
	html, err := RenderMarkdown(src)
	if err != nil {
		return nil, err
	}
	return func() string { return html }, nil
}

// StaticProducer returns a producer for fixed content.
func StaticProducer(content string) Producer {
	return func() string { return content }
}

// DefaultTable builds the table of built-in pages. The home route has
// empty content since the overlay is hidden there.
func DefaultTable() (*Table, error) {
	return TableFromFS(pagesFS, "pages", map[string]string{
		RouteAbout:    "about.md",
		RouteProjects: "projects.md",
		RouteContact:  "contact.md",
	}, "notfound.md")
}

// TableFromFS builds a table whose pages are markdown files under dir in
// fsys. files maps routes to file names; notFound names the fallback page.
func TableFromFS(fsys fs.FS, dir string, files map[string]string, notFound string) (*Table, error) {
	routes := map[string]Producer{
		RouteHome: StaticProducer(""),
	}
	for route, name := range files {
		p, err := fileProducer(fsys, dir, name)
		if err != nil {
			return nil, err
		}
		routes[route] = p
	}

	nf, err := fileProducer(fsys, dir, notFound)
	if err != nil {
		return nil, err
	}
	return NewTable(routes, nf)
}

func fileProducer(fsys fs.FS, dir, name string) (Producer, error) {
	src, err := fs.ReadFile(fsys, dir+"/"+name)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", name, err)
	}
	p, err := MarkdownProducer(src)
	if err != nil {
		return nil, fmt.Errorf("render page %s: %w", name, err)
	}
	return p, nil
}
