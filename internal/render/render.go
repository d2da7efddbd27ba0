// Package render turns an explanation's markdown source into a standalone
// themed HTML document.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"wordkeep/internal/model"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Document converts markdown into an HTML document with the theme's style
// sheet inlined. Raw HTML in the source stays escaped (goldmark's default),
// so rendered input cannot execute anything; links and images come out as
// plain references for the display surface to resolve.
func Document(source string, theme model.Theme) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(source), &body); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	var doc strings.Builder
	doc.WriteString("<html><head><style>")
	doc.WriteString(styleSheet(PaletteFor(theme)))
	doc.WriteString("</style></head><body>")
	doc.Write(body.Bytes())
	doc.WriteString("</body></html>")
	return doc.String(), nil
}

func styleSheet(p Palette) string {
	replacer := strings.NewReplacer(
		"{bg}", p.Background,
		"{text}", p.Text,
		"{heading}", p.Heading,
		"{border}", p.Border,
		"{codebg}", p.CodeBackground,
		"{code}", p.CodeText,
		"{quotebar}", p.QuoteBar,
		"{quotetext}", p.QuoteText,
		"{quotebg}", p.QuoteBg,
		"{cellbg}", p.CellBg,
		"{headfrom}", p.HeadBgFrom,
		"{headto}", p.HeadBgTo,
		"{headtext}", p.HeadText,
		"{em}", p.Emphasis,
	)
	return replacer.Replace(baseStyle)
}

const baseStyle = `
body {
    font-family: 'Segoe UI', sans-serif;
    font-size: 16px;
    line-height: 1.7;
    background-color: {bg};
    color: {text};
    padding: 16px;
}
table {
    border-collapse: separate;
    border-spacing: 0;
    width: 100%;
}
th, td {
    border: 1px solid {border};
    padding: 10px;
    text-align: left;
    background-color: {cellbg};
}
th {
    background: linear-gradient(to right, {headfrom}, {headto});
    font-weight: bold;
    color: {headtext};
}
code {
    background-color: {codebg};
    padding: 3px 6px;
    border-radius: 4px;
    color: {code};
}
pre code {
    display: block;
    padding: 10px;
}
img {
    max-width: 100%;
    height: auto;
    margin: 12px 0;
    border: 2px solid {border};
    border-radius: 6px;
}
h1, h2, h3 {
    color: {heading};
    border-bottom: 1px solid {border};
    padding-bottom: 6px;
    margin-top: 24px;
}
ul {
    padding-left: 24px;
    margin-bottom: 10px;
}
li {
    margin-bottom: 6px;
    line-height: 1.5;
}
blockquote {
    border-left: 4px solid {quotebar};
    padding-left: 12px;
    margin-left: 0;
    color: {quotetext};
    background-color: {quotebg};
}
strong {
    color: {em};
}
`
