package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"isogen/internal/config"
	"isogen/internal/core/ports"
	"isogen/internal/observability/metrics"
)

const serviceName = "isogen-api"

type Router struct {
	cfg      config.Config
	docs     ports.DocumentService
	intake   ports.IntakeService
	chat     ports.ChatService
	export   ports.ExportService
	verifier ports.IdentityVerifier
	metrics  *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	docs ports.DocumentService,
	intake ports.IntakeService,
	chat ports.ChatService,
	export ports.ExportService,
	verifier ports.IdentityVerifier,
	serverMetrics *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:      cfg,
		docs:     docs,
		intake:   intake,
		chat:     chat,
		export:   export,
		verifier: verifier,
		metrics:  serverMetrics,
	}
}

func (rt *Router) Handler() http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /v1/documents", rt.createDocument)
	apiMux.HandleFunc("GET /v1/documents", rt.listDocuments)
	apiMux.HandleFunc("GET /v1/documents/export/overview", rt.exportOverview)
	apiMux.HandleFunc("GET /v1/documents/{documentId}", rt.getDocument)
	apiMux.HandleFunc("DELETE /v1/documents/{documentId}", rt.deleteDocument)
	apiMux.HandleFunc("PUT /v1/documents/{documentId}/content", rt.saveContent)
	apiMux.HandleFunc("GET /v1/documents/{documentId}/question", rt.currentQuestion)
	apiMux.HandleFunc("POST /v1/documents/{documentId}/answers", rt.submitAnswer)
	apiMux.HandleFunc("GET /v1/documents/{documentId}/analysis", rt.analyzeDocument)
	apiMux.HandleFunc("GET /v1/documents/{documentId}/export", rt.exportDocument)
	apiMux.HandleFunc("POST /v1/documents/{documentId}/chat", rt.sendChatMessage)
	apiMux.HandleFunc("GET /v1/documents/{documentId}/chat", rt.chatHistory)

	protected := http.Handler(apiMux)
	protected = rt.authMiddleware(protected)
	protected = openAPIValidationMiddleware(protected)
	protected = backpressureMiddleware(protected, rt.cfg.APIMaxInFlight, 50*time.Millisecond)
	protected = rateLimitMiddleware(protected, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", rt.healthz)
	if rt.metrics != nil {
		mux.Handle("GET /metrics", rt.metrics.Handler())
	}
	mux.Handle("/v1/", protected)

	handler := http.Handler(mux)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
