package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eladmint/whatsapp-analyzer/pkg/auth"
	"github.com/eladmint/whatsapp-analyzer/pkg/store"
	"github.com/eladmint/whatsapp-analyzer/pkg/utils"
)

// handleStorageSave handles PUT /v1/storage/{slot}. The body is the opaque
// text value; the verified identity scopes the key.
func (d Deps) handleStorageSave(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	slot := mux.Vars(r)["slot"]

	body, err := io.ReadAll(io.LimitReader(r.Body, maxTranscriptBytes))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if err := d.Store.Save(identity, slot, string(body)); err != nil {
		writeStoreError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]bool{"saved": true})
}

// handleStorageGet handles GET /v1/storage/{slot}. An absent value yields
// 404, not an error object, mirroring the optional return of the binding.
func (d Deps) handleStorageGet(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	slot := mux.Vars(r)["slot"]

	value, ok, err := d.Store.Get(identity, slot)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !ok {
		utils.JSONError(w, http.StatusNotFound, "no value stored")
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]string{"value": value})
}

// handleStorageClear handles DELETE /v1/storage, removing both slots.
func (d Deps) handleStorageClear(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if err := d.Store.Clear(identity); err != nil {
		writeStoreError(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, map[string]bool{"cleared": true})
}

// writeStoreError surfaces persistence failures explicitly: caller-ordering
// bugs (store not opened) and unknown slots are client-visible, everything
// else is a 500.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotOpened):
		utils.JSONError(w, http.StatusServiceUnavailable, "storage not initialized")
	case errors.Is(err, store.ErrUnknownSlot):
		utils.JSONError(w, http.StatusBadRequest, err.Error())
	default:
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
	}
}
