package httpapi

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions, err := h.registry.Positions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list positions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]lookupItemDTO, 0, len(positions))
	for _, p := range positions {
		out = append(out, lookupItemDTO{ID: p.ID, Name: p.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListFeet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFeet")
	defer span.End()

	feet, err := h.registry.Feet(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list feet failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]lookupItemDTO, 0, len(feet))
	for _, f := range feet {
		out = append(out, lookupItemDTO{ID: f.ID, Name: f.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
