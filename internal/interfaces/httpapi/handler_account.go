package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/footlink/transfer-market/internal/usecase"
)

func (h *Handler) GetMyAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyAccount")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	user, err := h.accountService.GetUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get account failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// DeleteMyAccount runs the full deletion cascade for the acting user.
// Market rows survive under the sentinel owner; personal data does not.
func (h *Handler) DeleteMyAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMyAccount")
	defer span.End()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	if err := h.accountService.DeleteAccount(ctx, userID); err != nil {
		h.logger.WarnContext(ctx, "delete account failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "account deleted", "user_id", userID)
	w.WriteHeader(http.StatusNoContent)
}
