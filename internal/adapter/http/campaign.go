package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobboard-ads/internal/core/port"
)

// maxBodyBytes bounds request bodies; creatives carry media URLs only.
const maxBodyBytes = 1 << 20

// handleCreateCampaign stores a launched campaign and returns it with its
// server id (201). The client's tempId is echoed back.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Create(r.Context(), principalFrom(r.Context()), req)
	if err != nil {
		h.fail(w, r, "create campaign", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// handleUpdateStatus moves a campaign to the requested status. Moves the
// lifecycle does not allow answer 409.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req port.UpdateStatusReq
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.UpdateStatus(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, "update status", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "get campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListMine(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.fail(w, r, "list campaigns", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// decode reads a JSON body into dst and validates it. It writes the 400
// response itself and reports whether the handler may continue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.fail(w, r, "validate request", err)
		return false
	}
	return true
}
