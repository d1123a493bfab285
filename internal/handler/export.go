package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/joestump/scribo/internal/export"
	"github.com/joestump/scribo/internal/metrics"
	"github.com/joestump/scribo/internal/ui"
)

// ExportHandler serves exports of the session's current content.
type ExportHandler struct {
	state *sessionState
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(state *sessionState) *ExportHandler {
	return &ExportHandler{state: state}
}

// Open handles POST /export/open. Without content the modal stays closed.
func (h *ExportHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.state.update(r.Context(), ui.OpenExport{})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Close handles POST /export/close.
func (h *ExportHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.state.update(r.Context(), ui.CloseExport{})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ExportHandler) current(w http.ResponseWriter, r *http.Request) (export.Artifact, bool) {
	st := h.state.load(r.Context())
	if st.Content == "" {
		http.Error(w, "nothing to export", http.StatusNotFound)
		return export.Artifact{}, false
	}
	return export.Artifact{Kind: st.Tool, Content: st.Content, GeneratedAt: time.Now()}, true
}

// Text handles GET /export.txt: the current content as a file download.
func (h *ExportHandler) Text(w http.ResponseWriter, r *http.Request) {
	if a, ok := h.current(w, r); ok {
		h.state.update(r.Context(), ui.CloseExport{})
		serveText(w, a)
	}
}

// Print handles GET /export/print: a printable page that opens the print
// dialog on load.
func (h *ExportHandler) Print(w http.ResponseWriter, r *http.Request) {
	if a, ok := h.current(w, r); ok {
		h.state.update(r.Context(), ui.CloseExport{})
		servePrintable(w, r, a)
	}
}

// serveText writes a as a text/plain attachment.
func serveText(w http.ResponseWriter, a export.Artifact) {
	w.Header().Set("Content-Type", export.TextContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.TextFilename(a.Kind, a.GeneratedAt)+`"`)
	if err := export.WriteText(w, a.Content); err != nil {
		log.Warn().Err(err).Msg("write text export")
		return
	}
	metrics.ExportsTotal.WithLabelValues("text").Inc()
}

// servePrintable writes a as a printable HTML page. ?markdown=1 renders the
// content as Markdown; ?autoprint=0 suppresses the print dialog.
func servePrintable(w http.ResponseWriter, r *http.Request, a export.Artifact) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	doc := export.Document{
		Artifact:  a,
		Markdown:  r.URL.Query().Get("markdown") == "1",
		AutoPrint: r.URL.Query().Get("autoprint") != "0",
	}
	if err := export.WritePrintable(w, doc); err != nil {
		log.Error().Err(err).Msg("write printable export")
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	metrics.ExportsTotal.WithLabelValues("print").Inc()
}
