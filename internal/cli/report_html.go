package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/JunJie-Chang/Personal-Time-Management/internal/stats"
)

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; }
</style>
</head>
<body>
%s</body>
</html>
`

// writeHTMLReport renders the Markdown report body to a standalone HTML file.
func writeHTMLReport(path string, s stats.Summary, topK int) error {
	var md strings.Builder
	md.WriteString("# Weekly Statistical Report\n\n")
	fmt.Fprintf(&md, "Period: %s\n\n", s.Period.Label())
	md.WriteString("```\n")
	md.WriteString(summaryText(s, topK))
	md.WriteString("```\n")

	converter := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var body bytes.Buffer
	if err := converter.Convert([]byte(md.String()), &body); err != nil {
		return fmt.Errorf("rendering report HTML: %w", err)
	}

	page := fmt.Sprintf(htmlShell, "Weekly review "+s.Period.Label(), body.String())
	return os.WriteFile(path, []byte(page), 0644)
}
