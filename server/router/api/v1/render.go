package v1

import (
	"bytes"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Section bodies are markdown-ish AI output; render them server-side so the
// frontend stays a dumb viewer. Raw HTML in the body is escaped, not passed
// through, since it is model- and user-influenced content.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

func renderHTML(body string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		// Conversion failures should not drop content; the frontend falls
		// back to the plain body when html is empty.
		slog.Warn("render: markdown conversion failed", "error", err)
		return ""
	}
	return buf.String()
}
