package presets

import (
	"encoding/json"
	"net/http"

	"Thermex/internal/units"

	"github.com/gorilla/mux"
)

type Handler struct {
	Store *Store
}

// Get serves the control set for {device}, in the unit system named by
// the ?system= query parameter (SI when absent).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	device := mux.Vars(r)["device"]
	system, err := units.Parse(r.URL.Query().Get("system"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	fields, ok := h.Store.Fields(device, system)
	if !ok {
		http.Error(w, "Unknown device", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Device string       `json:"device"`
		System units.System `json:"unit_system"`
		Fields []Field      `json:"fields"`
	}{Device: device, System: system, Fields: fields})
}
