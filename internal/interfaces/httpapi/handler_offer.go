package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/footlink/transfer-market/internal/domain/lookup"
	"github.com/footlink/transfer-market/internal/domain/offer"
	"github.com/footlink/transfer-market/internal/usecase"
)

func (h *Handler) CreateClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClubOffer")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createOfferRequest
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

	created, err := h.offerService.CreateClubOffer(ctx, usecase.CreateClubOfferInput{
		PlayerAdvertisementID: req.AdvertisementID,
		PositionID:            req.PositionID,
		Salary:                req.Salary,
		AdditionalInformation: req.AdditionalInformation,
		OffererID:             userID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create club offer failed", "user_id", userID, "player_advertisement_id", req.AdvertisementID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubOfferToDTO(created))
}

func (h *Handler) CreatePlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayerOffer")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createOfferRequest
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

	created, err := h.offerService.CreatePlayerOffer(ctx, usecase.CreatePlayerOfferInput{
		ClubAdvertisementID:   req.AdvertisementID,
		PositionID:            req.PositionID,
		Salary:                req.Salary,
		AdditionalInformation: req.AdditionalInformation,
		OffererID:             userID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player offer failed", "user_id", userID, "club_advertisement_id", req.AdvertisementID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerOfferToDTO(created))
}

func (h *Handler) GetClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubOffer")
	defer span.End()

	id, err := pathID(r, "offerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.offerService.GetClubOffer(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get club offer failed", "offer_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubOfferToDTO(item))
}

func (h *Handler) GetPlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerOffer")
	defer span.End()

	id, err := pathID(r, "offerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.offerService.GetPlayerOffer(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player offer failed", "offer_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerOfferToDTO(item))
}

func (h *Handler) ListClubOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubOffers")
	defer span.End()

	var (
		items []offer.ClubOffer
		err   error
	)
	switch r.URL.Query().Get("state") {
	case "", "active":
		items, err = h.offerService.ListActiveClubOffers(ctx)
	case "inactive":
		items, err = h.offerService.ListInactiveClubOffers(ctx)
	case "all":
		items, err = h.offerService.ListClubOffers(ctx)
	default:
		writeError(ctx, w, fmt.Errorf("%w: state must be active, inactive or all", usecase.ErrInvalidInput))
		return
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list club offers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]clubOfferDTO, 0, len(items))
	for _, item := range items {
		out = append(out, clubOfferToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListPlayerOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerOffers")
	defer span.End()

	var (
		items []offer.PlayerOffer
		err   error
	)
	switch r.URL.Query().Get("state") {
	case "", "active":
		items, err = h.offerService.ListActivePlayerOffers(ctx)
	case "inactive":
		items, err = h.offerService.ListInactivePlayerOffers(ctx)
	case "all":
		items, err = h.offerService.ListPlayerOffers(ctx)
	default:
		writeError(ctx, w, fmt.Errorf("%w: state must be active, inactive or all", usecase.ErrInvalidInput))
		return
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list player offers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerOfferDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerOfferToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CountActiveClubOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountActiveClubOffers")
	defer span.End()

	count, err := h.offerService.CountActiveClubOffers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "count active club offers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: count})
}

func (h *Handler) CountActivePlayerOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountActivePlayerOffers")
	defer span.End()

	count, err := h.offerService.CountActivePlayerOffers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "count active player offers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, countDTO{Count: count})
}

func (h *Handler) AcceptClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AcceptClubOffer")
	defer span.End()

	h.transitionClubOffer(ctx, w, r, h.offerService.AcceptClubOffer, "accept club offer failed")
}

func (h *Handler) RejectClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectClubOffer")
	defer span.End()

	h.transitionClubOffer(ctx, w, r, h.offerService.RejectClubOffer, "reject club offer failed")
}

func (h *Handler) AcceptPlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AcceptPlayerOffer")
	defer span.End()

	h.transitionPlayerOffer(ctx, w, r, h.offerService.AcceptPlayerOffer, "accept player offer failed")
}

func (h *Handler) RejectPlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectPlayerOffer")
	defer span.End()

	h.transitionPlayerOffer(ctx, w, r, h.offerService.RejectPlayerOffer, "reject player offer failed")
}

func (h *Handler) ClubOfferStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClubOfferStatus")
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

	statusID, err := h.offerService.ClubOfferStatusID(ctx, adID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "club offer status lookup failed", "player_advertisement_id", adID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerStatusDTO{
		OfferStatusID: statusID,
		HasOffer:      statusID != lookup.NoOfferStatusID,
	})
}

func (h *Handler) PlayerOfferStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerOfferStatus")
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

	statusID, err := h.offerService.PlayerOfferStatusID(ctx, adID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "player offer status lookup failed", "club_advertisement_id", adID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerStatusDTO{
		OfferStatusID: statusID,
		HasOffer:      statusID != lookup.NoOfferStatusID,
	})
}

func (h *Handler) DeleteClubOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClubOffer")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "offerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.offerService.GetClubOffer(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if current.OffererID != userID {
		writeError(ctx, w, fmt.Errorf("%w: offer %d belongs to another user", usecase.ErrUnauthorized, id))
		return
	}

	if err := h.offerService.DeleteClubOffer(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete club offer failed", "offer_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeletePlayerOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayerOffer")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	id, err := pathID(r, "offerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.offerService.GetPlayerOffer(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if current.OffererID != userID {
		writeError(ctx, w, fmt.Errorf("%w: offer %d belongs to another user", usecase.ErrUnauthorized, id))
		return
	}

	if err := h.offerService.DeletePlayerOffer(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player offer failed", "offer_id", id, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) transitionClubOffer(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	transition func(context.Context, int64) error,
	failureMsg string,
) {
	id, err := pathID(r, "offerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := transition(ctx, id); err != nil {
		h.logger.WarnContext(ctx, failureMsg, "offer_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.offerService.GetClubOffer(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubOfferToDTO(item))
}

func (h *Handler) transitionPlayerOffer(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	transition func(context.Context, int64) error,
	failureMsg string,
) {
	id, err := pathID(r, "offerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := transition(ctx, id); err != nil {
		h.logger.WarnContext(ctx, failureMsg, "offer_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.offerService.GetPlayerOffer(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerOfferToDTO(item))
}
