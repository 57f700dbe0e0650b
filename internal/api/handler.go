package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wgomg/textstat/internal/document"
	"github.com/wgomg/textstat/internal/paperless"
	"github.com/wgomg/textstat/internal/pipeline"
	"github.com/wgomg/textstat/internal/report"
	"github.com/wgomg/textstat/internal/utils"
	"github.com/wgomg/textstat/internal/utils/httputils"
)

type Handler struct {
	logger    *utils.Logger
	runner    *pipeline.Runner
	paperless *paperless.Client
}

// NewHandler builds the HTTP handler. paperlessClient may be nil, in which
// case document runs answer 503.
func NewHandler(logger *utils.Logger, runner *pipeline.Runner, paperlessClient *paperless.Client) *Handler {
	return &Handler{
		logger:    logger,
		runner:    runner,
		paperless: paperlessClient,
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputils.WriteJSON(w, http.StatusOK, httputils.Envelope{Status: httputils.StatusSuccess, Message: "ok"})
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	if err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, err)
		return
	}

	var payload AnalyzeRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	doc, err := buildDocument(payload)
	if err != nil {
		h.logger.Error(&reqID, "Invalid analyze request: %v", err)
		httputils.HandleError(w, err)
		return
	}

	source := payload.Source
	if source == "" {
		source = "request"
	}

	outcome, err := h.runner.Run(pipeline.Request{
		Source:   source,
		Document: doc,
		Language: payload.Language,
		Keywords: payload.Keywords,
		Cap:      payload.Cap,
	}, reqID)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	if err := httputils.SuccessResponse(w, "Analysis completed", outcome.Report); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleDocumentAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	if h.paperless == nil {
		httputils.HandleError(w, &httputils.HTTPError{
			Code:    http.StatusServiceUnavailable,
			Message: "Paperless is not configured",
		})
		return
	}

	documentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || documentID <= 0 {
		httputils.HandleError(w, &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid document id %q", chi.URLParam(r, "id")),
		})
		return
	}

	var payload DocumentAnalyzeRequest
	if err := httputils.DecodeOptionalJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	paperlessDocument, err := h.paperless.GetDocument(documentID, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Failed to fetch document %d: %v", documentID, err)
		h.fail(w, reqID, err)
		return
	}

	outcome, err := h.runner.Run(pipeline.Request{
		Source:   utils.Truncate(paperlessDocument.Title, 127),
		Document: document.ParseText(paperlessDocument.Content),
		Language: payload.Language,
		Keywords: payload.Keywords,
		Cap:      payload.Cap,
	}, reqID)
	if err != nil {
		h.fail(w, reqID, err)
		return
	}

	if payload.Note {
		if err := h.paperless.AddNote(documentID, report.Note(outcome.Report), reqID); err != nil {
			h.logger.Error(&reqID, "Failed to add note to document %d: %v", documentID, err)
			h.fail(w, reqID, err)
			return
		}
	}

	if err := httputils.SuccessResponse(w, "Analysis completed", outcome.Report); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func buildDocument(payload AnalyzeRequest) (document.Document, error) {
	if len(payload.Paragraphs) > 0 && payload.Content != "" {
		return nil, &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Send either paragraphs or content, not both",
		}
	}
	if len(payload.Paragraphs) > 0 {
		return document.FromParagraphs(payload.Paragraphs), nil
	}

	switch payload.Format {
	case "", FormatText:
		return document.ParseText(payload.Content), nil
	case FormatMarkdown:
		return document.ParseMarkdown([]byte(payload.Content)), nil
	default:
		return nil, &httputils.HTTPError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Unknown format %q", payload.Format),
		}
	}
}

// fail maps run and upstream errors onto HTTP statuses.
func (h *Handler) fail(w http.ResponseWriter, reqID string, err error) {
	var apiErr *paperless.APIError
	switch {
	case pipeline.IsInputError(err):
		h.logger.Info(&reqID, "Rejected input: %v", err)
		err = &httputils.HTTPError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		err = &httputils.HTTPError{Code: http.StatusNotFound, Message: "Document not found"}
	case errors.As(err, &apiErr):
		err = &httputils.HTTPError{Code: http.StatusBadGateway, Message: apiErr.Error()}
	default:
		h.logger.Error(&reqID, "Analysis failed: %v", err)
	}
	httputils.HandleError(w, err)
}
