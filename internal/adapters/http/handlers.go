package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"isogen/internal/core/domain"
)

func (rt *Router) createDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Type    string `json:"type"`
		Company string `json:"company"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	doc, err := rt.docs.Create(r.Context(), userIDFromContext(r.Context()), req.Title, req.Type, req.Company)
	if err != nil {
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordDocumentCreated(serviceName, doc.Type)
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := rt.docs.List(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (rt *Router) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := rt.docs.Get(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := rt.docs.Delete(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt *Router) saveContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EditableContent string `json:"editable_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	doc, err := rt.docs.SaveContent(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId"), req.EditableContent)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) currentQuestion(w http.ResponseWriter, r *http.Request) {
	state, err := rt.intake.CurrentQuestion(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (rt *Router) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	result, err := rt.intake.SubmitAnswer(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId"), req.Answer)
	if err != nil {
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordAnswerSubmitted(serviceName, result.Document.Status == domain.StatusComplete)
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	analysis, err := rt.export.Analysis(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (rt *Router) exportDocument(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))

	result, err := rt.export.Export(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId"), format, strict)
	if rt.metrics != nil {
		rt.metrics.RecordExport(serviceName, format, err)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeDownload(w, result.ContentType, result.Filename, result.Data)
}

func (rt *Router) exportOverview(w http.ResponseWriter, r *http.Request) {
	result, err := rt.export.Overview(r.Context(), userIDFromContext(r.Context()))
	if rt.metrics != nil {
		rt.metrics.RecordExport(serviceName, "overview", err)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeDownload(w, result.ContentType, result.Filename, result.Data)
}

func (rt *Router) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	message, err := rt.chat.Send(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId"), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordChatMessage(serviceName, string(message.Role))
	}
	writeJSON(w, http.StatusAccepted, message)
}

func (rt *Router) chatHistory(w http.ResponseWriter, r *http.Request) {
	messages, err := rt.chat.History(r.Context(), userIDFromContext(r.Context()), r.PathValue("documentId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

func writeDownload(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
