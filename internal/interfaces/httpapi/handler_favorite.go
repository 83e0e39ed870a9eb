package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/footlink/transfer-market/internal/domain/favorite"
	"github.com/footlink/transfer-market/internal/usecase"
)

func (h *Handler) AddPlayerAdvertisementFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayerAdvertisementFavorite")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req addFavoriteRequest
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

	added, err := h.favoriteService.AddPlayerAdFavorite(ctx, req.AdvertisementID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "add player advertisement favorite failed", "advertisement_id", req.AdvertisementID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerAdFavoriteToDTO(added))
}

func (h *Handler) AddClubAdvertisementFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddClubAdvertisementFavorite")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req addFavoriteRequest
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

	added, err := h.favoriteService.AddClubAdFavorite(ctx, req.AdvertisementID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "add club advertisement favorite failed", "advertisement_id", req.AdvertisementID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubAdFavoriteToDTO(added))
}

func (h *Handler) RemovePlayerAdvertisementFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayerAdvertisementFavorite")
	defer span.End()

	id, err := pathID(r, "favoriteID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.favoriteService.RemovePlayerAdFavorite(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "remove player advertisement favorite failed", "favorite_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveClubAdvertisementFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveClubAdvertisementFavorite")
	defer span.End()

	id, err := pathID(r, "favoriteID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.favoriteService.RemoveClubAdFavorite(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "remove club advertisement favorite failed", "favorite_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CheckPlayerAdvertisementFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckPlayerAdvertisementFavorite")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	adID, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	favoriteID, err := h.favoriteService.CheckIsFavoritePlayerAd(ctx, adID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "check player advertisement favorite failed", "advertisement_id", adID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, favoriteStatusDTO{
		FavoriteID: favoriteID,
		IsFavorite: favoriteID != favorite.NoFavoriteID,
	})
}

func (h *Handler) CheckClubAdvertisementFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckClubAdvertisementFavorite")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	adID, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	favoriteID, err := h.favoriteService.CheckIsFavoriteClubAd(ctx, adID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "check club advertisement favorite failed", "advertisement_id", adID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, favoriteStatusDTO{
		FavoriteID: favoriteID,
		IsFavorite: favoriteID != favorite.NoFavoriteID,
	})
}
