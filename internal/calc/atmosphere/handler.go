package atmosphere

import (
	"encoding/json"
	"net/http"
)

type Input struct {
	AltitudeM float64 `json:"altitude_m"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Evaluate(input.AltitudeM)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
