package workspace

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTitle returns the text of the first heading in a markdown document
func readmeTitle(source []byte) string {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		title = strings.TrimSpace(string(heading.Text(source)))
		if title == "" {
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkStop, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return ""
	}
	return title
}
