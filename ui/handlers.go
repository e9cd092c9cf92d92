package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"lifelens/app"
	"lifelens/domain/core"
	"lifelens/internal/analysis"
	"lifelens/internal/errors"
)

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleListCheckins(w http.ResponseWriter, r *http.Request) {
	checkins, err := a.checkins.List(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, checkins)
}

func (a *App) handleSubmitCheckin(w http.ResponseWriter, r *http.Request) {
	var req app.SubmitCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, errors.InvalidInput("malformed check-in body"))
		return
	}

	c, err := a.checkins.Submit(r.Context(), req)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (a *App) handleGetCheckin(w http.ResponseWriter, r *http.Request) {
	date, err := core.ParseDateKey(chi.URLParam(r, "date"))
	if err != nil {
		a.respondError(w, errors.InvalidInput(err.Error()))
		return
	}

	c, err := a.checkins.Get(r.Context(), date)
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (a *App) handleInsights(w http.ResponseWriter, r *http.Request) {
	report, err := a.insights.Insights(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (a *App) handleEvidence(w http.ResponseWriter, r *http.Request) {
	ev, err := a.insights.Evidence(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ev)
}

// summaryResponse carries the narrative in both source and rendered form
type summaryResponse struct {
	Evidence *analysis.Evidence `json:"evidence"`
	Markdown string             `json:"markdown"`
	HTML     string             `json:"html"`
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	md, ev, err := a.insights.Summarize(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summaryResponse{
		Evidence: ev,
		Markdown: md,
		HTML:     renderMarkdown(md),
	})
}

// renderMarkdown converts a markdown narrative to HTML for direct embedding
func renderMarkdown(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return string(markdown.ToHTML([]byte(md), p, renderer))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidInput, errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		a.logger.Error("request failed: %v", err)
	}
	respondJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already written; nothing useful left to send.
		return
	}
}
