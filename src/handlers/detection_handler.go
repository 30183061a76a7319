// backend/src/handlers/detection_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/username/finsight/backend/src/config"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/services"
	"github.com/username/finsight/backend/src/utils"
)

type DetectionHandler struct {
	detectionService services.DetectionService
}

func NewDetectionHandler(service services.DetectionService) *DetectionHandler {
	return &DetectionHandler{detectionService: service}
}

// HandleDetectFees runs the fee pipeline over the current expense snapshot.
// An optional ?limit= query parameter truncates the ranked list for display.
func (h *DetectionHandler) HandleDetectFees(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctxLogger := logger.FromContext(r.Context())
	ctxLogger.Info("Handling DetectFees request", "limit", limit)

	items, err := h.detectionService.DetectFees(limit)
	if err != nil {
		ctxLogger.Error("Error detecting fees", "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error detecting fees: %v", err), http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.DetectedFee{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// HandleDetectSubscriptions runs the subscription pipeline over the current
// expense snapshot.
func (h *DetectionHandler) HandleDetectSubscriptions(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctxLogger := logger.FromContext(r.Context())
	ctxLogger.Info("Handling DetectSubscriptions request", "limit", limit)

	items, err := h.detectionService.DetectSubscriptions(limit)
	if err != nil {
		ctxLogger.Error("Error detecting subscriptions", "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error detecting subscriptions: %v", err), http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.DetectedSubscription{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// HandleAcceptFeeSuggestion persists a detected fee the user confirmed. The
// next detection run deduplicates it.
func (h *DetectionHandler) HandleAcceptFeeSuggestion(w http.ResponseWriter, r *http.Request) {
	var item models.DetectedFee
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if item.CategoryName == "" || item.Amount == 0 {
		utils.SendJSONError(w, "category_name and amount are required", http.StatusBadRequest)
		return
	}

	id, err := h.detectionService.AcceptFeeSuggestion(item)
	if err != nil {
		logger.FromContext(r.Context()).Error("Error accepting fee suggestion", "error", err)
		utils.SendJSONError(w, "Error accepting fee suggestion", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int64{"id": id})
}

// HandleAcceptSubscriptionSuggestion persists a detected subscription the
// user confirmed.
func (h *DetectionHandler) HandleAcceptSubscriptionSuggestion(w http.ResponseWriter, r *http.Request) {
	var item models.DetectedSubscription
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if item.Name == "" || item.Amount == 0 {
		utils.SendJSONError(w, "name and amount are required", http.StatusBadRequest)
		return
	}

	id, err := h.detectionService.AcceptSubscriptionSuggestion(item)
	if err != nil {
		logger.FromContext(r.Context()).Error("Error accepting subscription suggestion", "error", err)
		utils.SendJSONError(w, "Error accepting subscription suggestion", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int64{"id": id})
}

// parseLimit reads the optional ?limit= parameter, falling back to the
// configured default result limit.
func parseLimit(r *http.Request) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return config.Cfg.DetectionResultLimit, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid limit %q", limitStr)
	}
	return limit, nil
}
