package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
	"github.com/footlink/transfer-market/internal/usecase"
)

func (h *Handler) CreatePlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayerAdvertisement")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createPlayerAdRequest
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

	created, err := h.advertisementService.CreatePlayerAd(ctx, usecase.CreatePlayerAdInput{
		PositionID: req.PositionID,
		League:     req.League,
		Region:     req.Region,
		Age:        req.Age,
		Height:     req.Height,
		FootID:     req.FootID,
		SalaryMin:  req.SalaryMin,
		SalaryMax:  req.SalaryMax,
		OwnerID:    userID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player advertisement failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerAdToDTO(created))
}

func (h *Handler) CreateClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClubAdvertisement")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createClubAdRequest
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

	created, err := h.advertisementService.CreateClubAd(ctx, usecase.CreateClubAdInput{
		PositionID: req.PositionID,
		ClubName:   req.ClubName,
		League:     req.League,
		Region:     req.Region,
		SalaryMin:  req.SalaryMin,
		SalaryMax:  req.SalaryMax,
		OwnerID:    userID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create club advertisement failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubAdToDTO(created))
}

func (h *Handler) GetPlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerAdvertisement")
	defer span.End()

	id, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.advertisementService.GetPlayerAd(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player advertisement failed", "advertisement_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerAdToDTO(item))
}

func (h *Handler) GetClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubAdvertisement")
	defer span.End()

	id, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.advertisementService.GetClubAd(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get club advertisement failed", "advertisement_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubAdToDTO(item))
}

func (h *Handler) ListPlayerAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerAdvertisements")
	defer span.End()

	var (
		items []advertisement.PlayerAdvertisement
		err   error
	)
	switch r.URL.Query().Get("state") {
	case "", "active":
		items, err = h.advertisementService.ListActivePlayerAds(ctx)
	case "inactive":
		items, err = h.advertisementService.ListInactivePlayerAds(ctx)
	case "all":
		items, err = h.advertisementService.ListPlayerAds(ctx)
	default:
		writeError(ctx, w, fmt.Errorf("%w: state must be active, inactive or all", usecase.ErrInvalidInput))
		return
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list player advertisements failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerAdvertisementDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerAdToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListClubAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubAdvertisements")
	defer span.End()

	var (
		items []advertisement.ClubAdvertisement
		err   error
	)
	switch r.URL.Query().Get("state") {
	case "", "active":
		items, err = h.advertisementService.ListActiveClubAds(ctx)
	case "inactive":
		items, err = h.advertisementService.ListInactiveClubAds(ctx)
	case "all":
		items, err = h.advertisementService.ListClubAds(ctx)
	default:
		writeError(ctx, w, fmt.Errorf("%w: state must be active, inactive or all", usecase.ErrInvalidInput))
		return
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list club advertisements failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]clubAdvertisementDTO, 0, len(items))
	for _, item := range items {
		out = append(out, clubAdToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CountActivePlayerAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountActivePlayerAdvertisements")
	defer span.End()

	count, err := h.advertisementService.CountActivePlayerAds(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "count active player advertisements failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: count})
}

func (h *Handler) CountActiveClubAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountActiveClubAdvertisements")
	defer span.End()

	count, err := h.advertisementService.CountActiveClubAds(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "count active club advertisements failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: count})
}

func (h *Handler) UpdatePlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerAdvertisement")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerAdRequest
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

	current, err := h.advertisementService.GetPlayerAd(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if current.OwnerID != userID {
		writeError(ctx, w, fmt.Errorf("%w: advertisement %d belongs to another user", usecase.ErrUnauthorized, id))
		return
	}

	current.PositionID = req.PositionID
	current.League = req.League
	current.Region = req.Region
	current.Age = req.Age
	current.Height = req.Height
	current.FootID = req.FootID
	current.SalaryRange.Min = req.SalaryMin
	current.SalaryRange.Max = req.SalaryMax

	if err := h.advertisementService.UpdatePlayerAd(ctx, current); err != nil {
		h.logger.WarnContext(ctx, "update player advertisement failed", "advertisement_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerAdToDTO(current))
}

func (h *Handler) UpdateClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubAdvertisement")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateClubAdRequest
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

	current, err := h.advertisementService.GetClubAd(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if current.OwnerID != userID {
		writeError(ctx, w, fmt.Errorf("%w: advertisement %d belongs to another user", usecase.ErrUnauthorized, id))
		return
	}

	current.PositionID = req.PositionID
	current.ClubName = req.ClubName
	current.League = req.League
	current.Region = req.Region
	current.SalaryRange.Min = req.SalaryMin
	current.SalaryRange.Max = req.SalaryMax

	if err := h.advertisementService.UpdateClubAd(ctx, current); err != nil {
		h.logger.WarnContext(ctx, "update club advertisement failed", "advertisement_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubAdToDTO(current))
}

func (h *Handler) FinishPlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishPlayerAdvertisement")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.advertisementService.GetPlayerAd(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if current.OwnerID != userID {
		writeError(ctx, w, fmt.Errorf("%w: advertisement %d belongs to another user", usecase.ErrUnauthorized, id))
		return
	}

	finished, err := h.advertisementService.FinishPlayerAd(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "finish player advertisement failed", "advertisement_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerAdToDTO(finished))
}

func (h *Handler) FinishClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishClubAdvertisement")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.advertisementService.GetClubAd(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if current.OwnerID != userID {
		writeError(ctx, w, fmt.Errorf("%w: advertisement %d belongs to another user", usecase.ErrUnauthorized, id))
		return
	}

	finished, err := h.advertisementService.FinishClubAd(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "finish club advertisement failed", "advertisement_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubAdToDTO(finished))
}

func (h *Handler) DeletePlayerAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayerAdvertisement")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.advertisementService.GetPlayerAd(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if current.OwnerID != userID {
		writeError(ctx, w, fmt.Errorf("%w: advertisement %d belongs to another user", usecase.ErrUnauthorized, id))
		return
	}

	if err := h.advertisementService.DeletePlayerAd(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player advertisement failed", "advertisement_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteClubAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClubAdvertisement")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "advertisementID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.advertisementService.GetClubAd(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if current.OwnerID != userID {
		writeError(ctx, w, fmt.Errorf("%w: advertisement %d belongs to another user", usecase.ErrUnauthorized, id))
		return
	}

	if err := h.advertisementService.DeleteClubAd(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete club advertisement failed", "advertisement_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
