package httpapi

import "net/http"

// RunExpiryDigestJob is invoked by the scheduler, never by end users.
func (h *Handler) RunExpiryDigestJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunExpiryDigestJob")
	defer span.End()

	result, err := h.expiryDigestService.Run(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "expiry digest job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "expiry digest job finished",
		"scanned", result.Scanned,
		"notified", result.Notified,
		"failed", result.Failed,
	)
	writeSuccess(ctx, w, http.StatusOK, expiryDigestResultDTO{
		Scanned:  result.Scanned,
		Notified: result.Notified,
		Failed:   result.Failed,
	})
}
