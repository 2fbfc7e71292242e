package boiler

import (
	"encoding/json"
	"net/http"

	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
)

type Handler struct {
	Props steam.Properties
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(h.Props, input)
	if err != nil {
		http.Error(w, err.Error(), calcerr.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
