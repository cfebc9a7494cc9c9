package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gnaneshwari22/hospital-scheduling/internal/billing"
)

// calculateBillHandler composes a billing strategy per request. Anything
// other than "insurance" bills as cash, with the discount defaulting to zero.
func calculateBillHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BillingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		if req.BaseFee < 0 {
			writeError(w, http.StatusBadRequest, "invalid_base_fee", "base_fee must not be negative")
			return
		}

		var strat billing.Strategy
		if strings.EqualFold(req.BillingType, "insurance") {
			strat = billing.Insurance{
				Provider:        req.Provider,
				PolicyNumber:    req.PolicyNumber,
				CoveragePercent: req.CoveragePercent,
			}
		} else {
			strat = billing.Cash{DiscountPercent: req.DiscountPercent}
		}

		writeJSON(w, http.StatusOK, BillingResponse{
			BillingType: strat.Kind(),
			BaseFee:     req.BaseFee,
			Amount:      strat.Amount(req.BaseFee),
			Details:     strat.Details(req.BaseFee),
		})
	}
}
