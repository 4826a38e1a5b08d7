// Package markdown renders post and changelog markdown to HTML.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// Render converts markdown source to HTML. On a render failure the raw
// source is returned so public reads never break over one bad document.
func Render(source string) string {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(source), &buf); err != nil {
		return source
	}
	return buf.String()
}
