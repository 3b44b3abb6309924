// Package render post-processes completion text for the browser.
package render

import (
	"bytes"
	"html"
	"regexp"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// MaxScore is the top of the lead score scale.
const MaxScore = 100

// scorePattern matches the scorecard line requested by the lead prompt.
var scorePattern = regexp.MustCompile(`Total Score:\s*(\d+)/100`)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
	),
	goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(util.Prioritized(literalHTMLRenderer{}, 100)),
	),
)

// Markdown converts completion markdown to HTML. Tables and fenced code blocks
// are supported; anything goldmark cannot interpret is kept as text. Raw HTML
// in the source is shown as escaped literal text, never executed.
func Markdown(text string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		// Convert only fails on writer errors; fall back to escaped text.
		return "<p>" + html.EscapeString(text) + "</p>"
	}
	return buf.String()
}

// ExtractScore returns the first "Total Score: N/100" value in text, clamped to
// [0, MaxScore]. It returns 0 when no score is present.
func ExtractScore(text string) int {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		// Only overflow gets here.
		return MaxScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// literalHTMLRenderer prints raw HTML blocks and inline tags as escaped text.
// It outranks goldmark's HTML renderer for those node kinds.
type literalHTMLRenderer struct{}

func (r literalHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
}

func (literalHTMLRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.HTMLBlock)
	if !entering {
		_, _ = w.WriteString("</p>\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<p>")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
	if n.HasClosure() {
		_, _ = w.Write(util.EscapeHTML(n.ClosureLine.Value(source)))
	}
	return ast.WalkContinue, nil
}

func (literalHTMLRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		_, _ = w.Write(util.EscapeHTML(segment.Value(source)))
	}
	return ast.WalkSkipChildren, nil
}
