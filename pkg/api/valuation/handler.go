package valuation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"intrinsic_valuation/pkg/core/config"
	"intrinsic_valuation/pkg/core/fetch"
	"intrinsic_valuation/pkg/core/ratios"
	"intrinsic_valuation/pkg/core/report"
	"intrinsic_valuation/pkg/core/sector"
	core "intrinsic_valuation/pkg/core/valuation"
)

// Handler serves the valuation endpoints.
type Handler struct {
	Client      *fetch.Client
	Sectors     *sector.Table
	Assumptions config.Assumptions
	Logger      *zap.Logger
}

// NewHandler wires the handler dependencies.
func NewHandler(client *fetch.Client, sectors *sector.Table, assumptions config.Assumptions, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Client: client, Sectors: sectors, Assumptions: assumptions, Logger: logger}
}

// AnalyzeRequest is the POST body for a valuation run. Rate fields
// accept both decimals and percent points; values above 1 are treated
// as percents.
type AnalyzeRequest struct {
	Ticker          string   `json:"ticker"`
	WACC            *float64 `json:"wacc,omitempty"`
	RiskFreeRate    *float64 `json:"risk_free_rate,omitempty"`
	Beta            *float64 `json:"beta,omitempty"`
	CostOfEquity    *float64 `json:"cost_of_equity,omitempty"`
	CostOfDebt      *float64 `json:"cost_of_debt,omitempty"`
	WeightOfDebt    *float64 `json:"weight_of_debt,omitempty"`
	TaxRate         *float64 `json:"tax_rate,omitempty"`
	GrowthStage1    *float64 `json:"growth_stage1,omitempty"`
	TerminalGrowth  *float64 `json:"terminal_growth,omitempty"`
	Years1          int      `json:"years1,omitempty"`
	Years2          int      `json:"years2,omitempty"`
	UsePerpetuity   bool     `json:"use_perpetuity,omitempty"`
	SkipSensitivity bool     `json:"skip_sensitivity,omitempty"`
}

// AnalyzeResponse bundles the analysis with the historical multiples.
type AnalyzeResponse struct {
	Analysis *core.Analysis           `json:"analysis"`
	History  *ratios.HistoricalRatios `json:"history,omitempty"`
}

func cors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// normalize converts a possibly-percent rate pointer to a decimal one.
func normalize(p *float64) *core.Rate {
	if p == nil {
		return nil
	}
	v := core.NormalizeRate(*p)
	return &v
}

func (req *AnalyzeRequest) options(sectors *sector.Table, a config.Assumptions) core.AnalysisOptions {
	opts := core.AnalysisOptions{
		Overrides: core.WACCOverrides{
			WACC:              normalize(req.WACC),
			RiskFreeRate:      normalize(req.RiskFreeRate),
			Beta:              req.Beta,
			CostOfEquity:      normalize(req.CostOfEquity),
			CostOfDebt:        normalize(req.CostOfDebt),
			TaxRate:           normalize(req.TaxRate),
			WeightOfDebt:      req.WeightOfDebt,
			MarketRiskPremium: &a.MarketRiskPremium,
		},
		GrowthStage1:    normalize(req.GrowthStage1),
		TerminalGrowth:  normalize(req.TerminalGrowth),
		Years1:          req.Years1,
		Years2:          req.Years2,
		DCFWeight:       a.DCFWeight,
		UsePerpetuity:   req.UsePerpetuity,
		SkipSensitivity: req.SkipSensitivity,
		SectorTable:     sectors,
	}
	if opts.GrowthStage1 == nil && a.GrowthStage1 > 0 && a.GrowthStage1 != core.DefaultGrowthStage1 {
		g := a.GrowthStage1
		opts.GrowthStage1 = &g
	}
	if opts.TerminalGrowth == nil && a.TerminalGrowth > 0 && a.TerminalGrowth != core.DefaultTerminalGrowth {
		g := a.TerminalGrowth
		opts.TerminalGrowth = &g
	}
	return opts
}

// HandleAnalyze runs the full valuation for one ticker.
// POST /api/valuation/analyze
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if err := fetch.ValidateSymbol(ticker); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cf, err := h.Client.FetchCompany(r.Context(), ticker)
	if err != nil {
		h.Logger.Warn("fetch failed", zap.String("ticker", ticker), zap.Error(err))
		http.Error(w, fmt.Sprintf("fetch %s: %v", ticker, err), http.StatusBadGateway)
		return
	}

	analysis := core.Analyze(cf, req.options(h.Sectors, h.Assumptions))

	resp := AnalyzeResponse{Analysis: analysis}
	if prices, err := h.Client.FetchYearlyAveragePrices(r.Context(), ticker); err == nil {
		resp.History = ratios.ComputeHistoricalRatios(cf.Statements, prices, cf.SharesOutstanding)
	}

	h.Logger.Info("analysis served",
		zap.String("ticker", ticker),
		zap.Float64("fair_value", analysis.FairValue),
		zap.Float64("upside_pct", analysis.UpsidePercent))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleReport renders the analysis as a document.
// GET /api/valuation/report?ticker=AAPL&format=html
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	ticker := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("ticker")))
	if err := fetch.ValidateSymbol(ticker); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cf, err := h.Client.FetchCompany(r.Context(), ticker)
	if err != nil {
		http.Error(w, fmt.Sprintf("fetch %s: %v", ticker, err), http.StatusBadGateway)
		return
	}

	analysis := core.Analyze(cf, (&AnalyzeRequest{}).options(h.Sectors, h.Assumptions))

	var history *ratios.HistoricalRatios
	if prices, err := h.Client.FetchYearlyAveragePrices(r.Context(), ticker); err == nil {
		history = ratios.ComputeHistoricalRatios(cf.Statements, prices, cf.SharesOutstanding)
	}

	rep := report.Build(analysis, history)
	if r.URL.Query().Get("format") == "html" {
		html, err := rep.RenderHTML()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}
