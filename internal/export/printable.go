package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/yuin/goldmark"
)

// Document is the printable rendering of an artifact.
type Document struct {
	Artifact
	// Markdown renders the content as Markdown instead of preformatted text.
	Markdown bool
	// AutoPrint opens the browser's print dialog once the page loads.
	AutoPrint bool
}

type printableData struct {
	Label     string
	Date      string
	Content   string
	HTML      template.HTML
	Markdown  bool
	AutoPrint bool
}

var printableTmpl = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Scribo AI - {{.Label}} Content</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 40px; line-height: 1.6; color: #333; }
      .header { text-align: center; margin-bottom: 40px; border-bottom: 2px solid #4F46E5; padding-bottom: 20px; }
      .header h1 { color: #4F46E5; margin: 0; font-size: 28px; }
      .header p { color: #666; margin: 5px 0 0 0; font-size: 14px; }
      .meta { margin-bottom: 20px; }
      .meta h2 { color: #333; font-size: 20px; margin-bottom: 10px; text-transform: capitalize; }
      .meta p { color: #666; font-size: 12px; margin: 0; }
      .content { background: #f8f9ff; padding: 20px; border-left: 4px solid #4F46E5; border-radius: 8px; }
      .content pre { white-space: pre-wrap; font-family: inherit; margin: 0; font-size: 14px; line-height: 1.6; }
      .footer { margin-top: 40px; text-align: center; color: #999; font-size: 12px; border-top: 1px solid #eee; padding-top: 20px; }
      @media print { body { margin: 0; } @page { margin: 0.5in; } }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>Scribo AI</h1>
      <p>AI Toolkit for Content Creators</p>
    </div>
    <div class="meta">
      <h2>{{.Label}} Content</h2>
      <p>Generated on {{.Date}}</p>
    </div>
    <div class="content">
      {{- if .Markdown}}{{.HTML}}{{else}}<pre>{{.Content}}</pre>{{end -}}
    </div>
    <div class="footer">
      <p>Generated with Scribo AI - AI Toolkit for Content Creators</p>
    </div>
    {{- if .AutoPrint}}
    <script>
      window.addEventListener("load", function () {
        setTimeout(function () { window.print(); }, 250);
      });
    </script>
    {{- end}}
  </body>
</html>
`))

// WritePrintable renders doc as a standalone HTML page.
func WritePrintable(w io.Writer, doc Document) error {
	at := doc.GeneratedAt
	if at.IsZero() {
		at = time.Now()
	}
	data := printableData{
		Label:     doc.Kind.Label(),
		Date:      at.Format("January 2, 2006"),
		Content:   doc.Content,
		Markdown:  doc.Markdown,
		AutoPrint: doc.AutoPrint,
	}
	if doc.Markdown {
		// goldmark drops raw HTML by default, so the output is safe to embed.
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(doc.Content), &buf); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		data.HTML = template.HTML(buf.String())
	}
	return printableTmpl.Execute(w, data)
}
