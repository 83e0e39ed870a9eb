package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/footlink/transfer-market/internal/domain/support"
	"github.com/footlink/transfer-market/internal/usecase"
)

func (h *Handler) ReportProblem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReportProblem")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req reportProblemRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.supportService.Report(ctx, support.Problem{
		Title:       req.Title,
		Description: req.Description,
		RequesterID: userID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "report problem failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, problemToDTO(created))
}

func (h *Handler) ListMyProblems(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyProblems")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.supportService.ListByRequester(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list problems failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]problemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, problemToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) MarkProblemSolved(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkProblemSolved")
	defer span.End()

	id, err := pathID(r, "problemID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.supportService.MarkSolved(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "mark problem solved failed", "problem_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
