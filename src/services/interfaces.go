// backend/src/services/interfaces.go
package services

import (
	"errors"
	"time"

	"github.com/username/finsight/backend/src/models"
)

// Define common service errors
var (
	ErrSnapshotLoadFailed = errors.New("expense snapshot load failed")
	ErrDetectionFailed    = errors.New("recurring pattern detection failed")
)

// DetectionService is the boundary the UI layer calls: detection over the
// current expense snapshot, analytics and recommendations over confirmed
// fees, and acceptance of suggestions into the tracked store.
type DetectionService interface {
	// DetectFees returns ranked fee suggestions, truncated to limit when
	// limit > 0.
	DetectFees(limit int) ([]models.DetectedFee, error)
	// DetectSubscriptions returns ranked subscription suggestions,
	// truncated to limit when limit > 0.
	DetectSubscriptions(limit int) ([]models.DetectedSubscription, error)

	GetFeeAnalytics(from, to time.Time) (models.FeeAnalytics, error)
	GetFeeRecommendations(from, to time.Time) ([]models.Recommendation, error)

	// AcceptFeeSuggestion persists a detected fee as a tracked record, so
	// the next detection run deduplicates it.
	AcceptFeeSuggestion(item models.DetectedFee) (int64, error)
	// AcceptSubscriptionSuggestion persists a detected subscription as a
	// tracked record.
	AcceptSubscriptionSuggestion(item models.DetectedSubscription) (int64, error)

	InvalidateDetectionCache()
}
