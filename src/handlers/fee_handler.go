// backend/src/handlers/fee_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/services"
	"github.com/username/finsight/backend/src/utils"
)

const rangeDateLayout = "2006-01-02"

type FeeHandler struct {
	detectionService services.DetectionService
}

func NewFeeHandler(service services.DetectionService) *FeeHandler {
	return &FeeHandler{detectionService: service}
}

// HandleGetFeeAnalytics summarizes confirmed fees over a time range given by
// start_date / end_date query parameters; the default range is the trailing
// twelve months.
func (h *FeeHandler) HandleGetFeeAnalytics(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctxLogger := logger.FromContext(r.Context())
	ctxLogger.Info("Handling GetFeeAnalytics request", "from", from, "to", to)

	analytics, err := h.detectionService.GetFeeAnalytics(from, to)
	if err != nil {
		ctxLogger.Error("Error computing fee analytics", "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error computing fee analytics: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analytics)
}

// HandleGetFeeRecommendations turns the fee analytics for a time range into
// prioritized savings recommendations.
func (h *FeeHandler) HandleGetFeeRecommendations(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctxLogger := logger.FromContext(r.Context())
	ctxLogger.Info("Handling GetFeeRecommendations request", "from", from, "to", to)

	recommendations, err := h.detectionService.GetFeeRecommendations(from, to)
	if err != nil {
		ctxLogger.Error("Error computing fee recommendations", "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error computing fee recommendations: %v", err), http.StatusInternalServerError)
		return
	}

	if recommendations == nil {
		recommendations = []models.Recommendation{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recommendations)
}

func parseRange(r *http.Request) (time.Time, time.Time, error) {
	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")

	now := time.Now()
	from := now.AddDate(-1, 0, 0)
	to := now

	if startStr != "" {
		parsed, err := time.Parse(rangeDateLayout, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date format: use YYYY-MM-DD")
		}
		from = parsed
	}
	if endStr != "" {
		parsed, err := time.Parse(rangeDateLayout, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date format: use YYYY-MM-DD")
		}
		to = parsed
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date cannot be before start_date")
	}
	return from, to, nil
}
