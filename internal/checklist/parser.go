// Package checklist parses freestanding planning documents: Markdown task
// lists (`- [x]` / `- [ ]`) grouped under headings, with no frontmatter.
package checklist

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-content/internal/identity"
	"github.com/goliatone/go-content/pkg/interfaces"
)

// Parser extracts task entries from a Markdown document using the goldmark
// TaskList extension. A single instance is reusable across documents.
type Parser struct {
	engine goldmark.Markdown
}

// NewParser constructs a checklist parser.
func NewParser() *Parser {
	return &Parser{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.TaskList),
		),
	}
}

// Load reads and parses a checklist document from the supplied filesystem.
func (p *Parser) Load(fsys fs.FS, path string) (*interfaces.Checklist, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("checklist: read %s: %w", path, err)
	}
	return p.Parse(path, data)
}

// Parse walks the Markdown AST collecting task entries. Headings open
// sections; entries before any heading land in an untitled section. Prose and
// non-task list items are ignored.
func (p *Parser) Parse(path string, source []byte) (*interfaces.Checklist, error) {
	root := p.engine.Parser().Parse(text.NewReader(source))

	checklist := &interfaces.Checklist{
		ID:   identity.ChecklistUUID(path),
		Path: path,
	}
	current := interfaces.ChecklistSection{}

	flush := func() {
		if len(current.Items) > 0 {
			checklist.Sections = append(checklist.Sections, current)
		}
	}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			flush()
			current = interfaces.ChecklistSection{
				Title: nodeText(node, source),
				Level: node.Level,
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			if item, ok := taskItem(node, source); ok {
				current.Items = append(current.Items, item)
			}
			// Keep walking so nested task lists are collected too.
			return ast.WalkContinue, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("checklist: parse %s: %w", path, err)
	}

	flush()
	return checklist, nil
}

// taskItem extracts the checkbox state and label from a list item. Items
// without a leading TaskCheckBox are plain bullets and are skipped.
func taskItem(item *ast.ListItem, source []byte) (interfaces.ChecklistItem, bool) {
	block := item.FirstChild()
	if block == nil {
		return interfaces.ChecklistItem{}, false
	}

	checkbox, ok := block.FirstChild().(*east.TaskCheckBox)
	if !ok {
		return interfaces.ChecklistItem{}, false
	}

	var label strings.Builder
	for child := checkbox.NextSibling(); child != nil; child = child.NextSibling() {
		label.WriteString(nodeText(child, source))
	}

	return interfaces.ChecklistItem{
		Text: strings.TrimSpace(label.String()),
		Done: checkbox.IsChecked,
	}, true
}

// nodeText concatenates the text segments beneath a node, skipping any
// embedded checkboxes.
func nodeText(n ast.Node, source []byte) string {
	switch node := n.(type) {
	case *ast.Text:
		return string(node.Segment.Value(source))
	case *ast.String:
		return string(node.Value)
	case *east.TaskCheckBox:
		return ""
	}

	var out strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out.WriteString(nodeText(child, source))
	}
	return out.String()
}
