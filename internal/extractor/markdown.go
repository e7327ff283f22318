package extractor

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmtext "github.com/yuin/goldmark/text"
)

// extractMarkdown parses GFM markdown and collects the text nodes,
// dropping formatting, links and code fences' surrounding syntax.
func extractMarkdown(data []byte) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(gmtext.NewReader(data))

	var text strings.Builder
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if _, ok := n.(*ast.Paragraph); ok {
				text.WriteString("\n\n")
			}
			if _, ok := n.(*ast.Heading); ok {
				text.WriteString("\n\n")
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			text.Write(node.Segment.Value(data))
			if node.SoftLineBreak() || node.HardLineBreak() {
				text.WriteString("\n")
			}
		case *ast.FencedCodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				text.Write(seg.Value(data))
			}
			text.WriteString("\n")
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text.String()), nil
}
