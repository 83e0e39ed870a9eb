package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/footlink/transfer-market/internal/domain/clubhistory"
	"github.com/footlink/transfer-market/internal/usecase"
)

func (h *Handler) ListMyClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyClubHistory")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.clubHistoryService.ListByPlayer(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list club history failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]clubHistoryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, clubHistoryToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListPlayerClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerClubHistory")
	defer span.End()

	playerID := r.PathValue("playerID")
	items, err := h.clubHistoryService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player club history failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]clubHistoryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, clubHistoryToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClubHistory")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	entry, err := h.decodeClubHistoryRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entry.PlayerID = userID

	created, err := h.clubHistoryService.Create(ctx, entry)
	if err != nil {
		h.logger.WarnContext(ctx, "create club history failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubHistoryToDTO(created))
}

func (h *Handler) UpdateClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubHistory")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "historyID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.decodeClubHistoryRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entry.ID = id
	entry.PlayerID = userID

	if err := h.ensureClubHistoryOwner(ctx, id, userID); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.clubHistoryService.Update(ctx, entry); err != nil {
		h.logger.WarnContext(ctx, "update club history failed", "history_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubHistoryToDTO(entry))
}

func (h *Handler) DeleteClubHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClubHistory")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "historyID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.ensureClubHistoryOwner(ctx, id, userID); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.clubHistoryService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete club history failed", "history_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeClubHistoryRequest(ctx context.Context, r *http.Request) (clubhistory.ClubHistory, error) {
	var req upsertClubHistoryRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return clubhistory.ClubHistory{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return clubhistory.ClubHistory{}, err
	}

	startDate, err := parseDateField("start_date", req.StartDate)
	if err != nil {
		return clubhistory.ClubHistory{}, err
	}
	endDate, err := parseDateField("end_date", req.EndDate)
	if err != nil {
		return clubhistory.ClubHistory{}, err
	}

	return clubhistory.ClubHistory{
		PositionID: req.PositionID,
		ClubName:   req.ClubName,
		League:     req.League,
		Region:     req.Region,
		StartDate:  startDate,
		EndDate:    endDate,
		Achievements: clubhistory.Achievements{
			NumberOfMatches:        req.Achievements.NumberOfMatches,
			Goals:                  req.Achievements.Goals,
			Assists:                req.Achievements.Assists,
			AdditionalAchievements: req.Achievements.AdditionalAchievements,
		},
	}, nil
}

func (h *Handler) ensureClubHistoryOwner(ctx context.Context, historyID int64, userID string) error {
	entries, err := h.clubHistoryService.ListByPlayer(ctx, userID)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.ID == historyID {
			return nil
		}
	}
	return fmt.Errorf("%w: club history %d", usecase.ErrNotFound, historyID)
}
