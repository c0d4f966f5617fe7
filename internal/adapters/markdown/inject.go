package markdown

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/monokit-dev/monokit/internal/domain"
)

// span is a half-open byte range of the source
type span struct {
	start, stop int
}

func (s span) contains(pos int) bool {
	return pos >= s.start && pos < s.stop
}

// markerPair matches an opening and closing HTML comment marker
type markerPair struct {
	open  *regexp.Regexp
	close *regexp.Regexp
}

func newMarkerPair(name string) markerPair {
	quoted := regexp.QuoteMeta(name)
	return markerPair{
		open:  regexp.MustCompile(`<!--\s*` + quoted + `\s*-->`),
		close: regexp.MustCompile(`<!--\s*/` + quoted + `\s*-->`),
	}
}

// Inject replaces everything between every <!-- NAME --> and <!-- /NAME -->
// comment pair in source with content. Markers inside code spans and code
// blocks are ignored. Returns domain.ErrMarkerNotFound if no pair exists.
func Inject(source []byte, name, content string) ([]byte, error) {
	code := codeSpans(source)
	markers := newMarkerPair(name)
	inCode := func(pos int) bool {
		for _, s := range code {
			if s.contains(pos) {
				return true
			}
		}
		return false
	}

	opens := filterLocations(markers.open.FindAllIndex(source, -1), inCode)
	closes := filterLocations(markers.close.FindAllIndex(source, -1), inCode)

	var out strings.Builder
	last := 0
	injected := 0
	ci := 0
	for _, open := range opens {
		if open[0] < last {
			continue
		}
		for ci < len(closes) && closes[ci][0] < open[1] {
			ci++
		}
		if ci >= len(closes) {
			break
		}
		closing := closes[ci]
		ci++

		out.Write(source[last:open[1]])
		out.WriteString("\n")
		if body := strings.Trim(content, "\n"); body != "" {
			out.WriteString(body)
			out.WriteString("\n")
		}
		out.Write(source[closing[0]:closing[1]])
		last = closing[1]
		injected++
	}

	if injected == 0 {
		return nil, fmt.Errorf("%w: <!-- %s --> ... <!-- /%s -->", domain.ErrMarkerNotFound, name, name)
	}

	out.Write(source[last:])
	return []byte(out.String()), nil
}

func filterLocations(locs [][]int, skip func(int) bool) [][]int {
	kept := locs[:0]
	for _, loc := range locs {
		if !skip(loc[0]) {
			kept = append(kept, loc)
		}
	}
	return kept
}

// codeSpans returns the byte ranges of code spans and code blocks in source
func codeSpans(source []byte) []span {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var spans []span
	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if s, ok := linesSpan(n.Lines()); ok {
				spans = append(spans, s)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			if s, ok := childrenSpan(n); ok {
				spans = append(spans, s)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

func linesSpan(lines *text.Segments) (span, bool) {
	if lines == nil || lines.Len() == 0 {
		return span{}, false
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return span{start: first.Start, stop: last.Stop}, true
}

func childrenSpan(node ast.Node) (span, bool) {
	s := span{start: -1}
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		if s.start < 0 {
			s.start = t.Segment.Start
		}
		s.stop = t.Segment.Stop
	}
	return s, s.start >= 0
}
