package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/pdf-chat-assistant/internal/core/ports"
	"github.com/kirillkom/pdf-chat-assistant/internal/observability/metrics"
)

type Router struct {
	ingest  ports.DocumentIngestor
	chat    ports.ChatService
	docs    ports.DocumentReader
	metrics *metrics.HTTPServerMetrics
}

func NewRouter(
	ingest ports.DocumentIngestor,
	chat ports.ChatService,
	docs ports.DocumentReader,
	m *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		ingest:  ingest,
		chat:    chat,
		docs:    docs,
		metrics: m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/pdf", rt.uploadPDF)
	mux.HandleFunc("/v1/pdf/", rt.getPDFByID)
	mux.HandleFunc("/v1/chat/", rt.chatWithPDF)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = metricsMiddleware(rt.metrics, handler)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	handler = recoveryMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) uploadPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "method not allowed"})
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.ingest.Upload(r.Context(), fileHeader.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.ObserveDocumentUploaded(doc.PageCount)
	}
	writeJSON(w, http.StatusCreated, map[string]string{"pdf_id": doc.ID})
}

func (rt *Router) getPDFByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/pdf/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "pdf id is required"})
		return
	}

	doc, err := rt.docs.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) chatWithPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/chat/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "pdf id is required"})
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid json body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "message is required"})
		return
	}

	start := time.Now()
	answer, err := rt.chat.Ask(r.Context(), id, req.Message)
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.ObserveChat("error", time.Since(start))
		}
		writeError(w, r, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.ObserveChat("ok", time.Since(start))
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": answer})
}

// writeError logs the full cause server-side and sends the client only the
// mapped status and fixed detail message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := mapError(err)
	if status >= 500 {
		slog.Error("request_failed",
			"request_id", requestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
