package config

import (
	"encoding/json"
	"net/http"

	"intrinsic_valuation/pkg/core/config"
	"intrinsic_valuation/pkg/core/sector"
)

// Response exposes the active model configuration.
type Response struct {
	Assumptions config.Assumptions         `json:"assumptions"`
	Sectors     map[string]sector.Multiples `json:"sectors"`
	Default     sector.Multiples           `json:"default"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	Assumptions config.Assumptions
	Sectors     *sector.Table
}

// NewHandler creates a new config handler
func NewHandler(assumptions config.Assumptions, sectors *sector.Table) *Handler {
	return &Handler{
		Assumptions: assumptions,
		Sectors:     sectors,
	}
}

// HandleConfig returns the assumptions and the sector multiple table.
// GET /api/config
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		Assumptions: h.Assumptions,
		Sectors:     h.Sectors.Sectors(),
		Default:     h.Sectors.DefaultBucket(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
