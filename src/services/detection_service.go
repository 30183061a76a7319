// backend/src/services/detection_service.go
package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/finsight/backend/src/detection"
	"github.com/username/finsight/backend/src/insights"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/model"
	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/validation"
)

const (
	ckDetectedFees          = "res_detected_fees"
	ckDetectedSubscriptions = "res_detected_subscriptions"
	ckFeeAnalytics          = "agg_fee_analytics_%s_%s"
	ckFeeRecommendations    = "agg_fee_recommendations_%s_%s"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type detectionServiceImpl struct {
	db          *sql.DB
	reportCache *cache.Cache
	workers     int
}

// NewDetectionService builds the service over the application database and a
// report cache. workers bounds the per-series fan-out of a detection run;
// values below 1 use the pipeline default.
func NewDetectionService(db *sql.DB, reportCache *cache.Cache, workers int) DetectionService {
	return &detectionServiceImpl{db: db, reportCache: reportCache, workers: workers}
}

func (s *detectionServiceImpl) DetectFees(limit int) ([]models.DetectedFee, error) {
	if cached, found := s.reportCache.Get(ckDetectedFees); found {
		return truncateFees(cached.([]models.DetectedFee), limit), nil
	}

	transactions, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}
	known, err := s.knownFees()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionFailed, err)
	}

	cfg := detection.FeeConfig()
	cfg.Workers = s.workers
	items, err := detection.DetectFeesWithConfig(cfg, transactions, known)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionFailed, err)
	}
	logger.L.Info("Fee detection run complete", "transactions", len(transactions), "known", len(known), "candidates", len(items))

	s.reportCache.Set(ckDetectedFees, items, cache.DefaultExpiration)
	return truncateFees(items, limit), nil
}

func (s *detectionServiceImpl) DetectSubscriptions(limit int) ([]models.DetectedSubscription, error) {
	if cached, found := s.reportCache.Get(ckDetectedSubscriptions); found {
		return truncateSubscriptions(cached.([]models.DetectedSubscription), limit), nil
	}

	transactions, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}
	known, err := s.knownSubscriptions()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionFailed, err)
	}

	cfg := detection.SubscriptionConfig()
	cfg.Workers = s.workers
	items, err := detection.DetectSubscriptionsWithConfig(cfg, transactions, known)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionFailed, err)
	}
	logger.L.Info("Subscription detection run complete", "transactions", len(transactions), "known", len(known), "candidates", len(items))

	s.reportCache.Set(ckDetectedSubscriptions, items, cache.DefaultExpiration)
	return truncateSubscriptions(items, limit), nil
}

func (s *detectionServiceImpl) GetFeeAnalytics(from, to time.Time) (models.FeeAnalytics, error) {
	cacheKey := fmt.Sprintf(ckFeeAnalytics, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if cached, found := s.reportCache.Get(cacheKey); found {
		return cached.(models.FeeAnalytics), nil
	}

	fees, err := model.ListFees(s.db)
	if err != nil {
		return models.FeeAnalytics{}, fmt.Errorf("%w: %v", ErrSnapshotLoadFailed, err)
	}
	analytics := insights.AggregateFees(fees, from, to)

	s.reportCache.Set(cacheKey, analytics, cache.DefaultExpiration)
	return analytics, nil
}

func (s *detectionServiceImpl) GetFeeRecommendations(from, to time.Time) ([]models.Recommendation, error) {
	cacheKey := fmt.Sprintf(ckFeeRecommendations, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if cached, found := s.reportCache.Get(cacheKey); found {
		return cached.([]models.Recommendation), nil
	}

	fees, err := model.ListFees(s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotLoadFailed, err)
	}
	analytics := insights.AggregateFees(fees, from, to)
	recommendations := insights.RecommendFees(fees, analytics, from, to)

	s.reportCache.Set(cacheKey, recommendations, cache.DefaultExpiration)
	return recommendations, nil
}

func (s *detectionServiceImpl) AcceptFeeSuggestion(item models.DetectedFee) (int64, error) {
	fee := models.Fee{
		CategoryName:    item.CategoryName,
		CategoryType:    item.CategoryType,
		InstitutionName: item.InstitutionName,
		Description:     validation.SanitizeDescription(item.Description),
		Amount:          item.Amount,
		Date:            item.Date,
		Recurring:       true,
	}
	id, err := model.InsertFee(s.db, fee)
	if err != nil {
		return 0, err
	}
	s.InvalidateDetectionCache()
	return id, nil
}

func (s *detectionServiceImpl) AcceptSubscriptionSuggestion(item models.DetectedSubscription) (int64, error) {
	sub := models.Subscription{
		Name:            item.Name,
		Category:        item.Category,
		InstitutionName: item.InstitutionName,
		Description:     validation.SanitizeDescription(item.Description),
		Amount:          item.Amount,
		Frequency:       string(item.Frequency),
		Date:            item.Date,
		Active:          true,
	}
	id, err := model.InsertSubscription(s.db, sub)
	if err != nil {
		return 0, err
	}
	s.InvalidateDetectionCache()
	return id, nil
}

// InvalidateDetectionCache drops cached detection results so the next run
// reflects newly accepted records.
func (s *detectionServiceImpl) InvalidateDetectionCache() {
	s.reportCache.Delete(ckDetectedFees)
	s.reportCache.Delete(ckDetectedSubscriptions)
}

// loadSnapshot reads the expense snapshot and quarantines records that fail
// schema validation before they reach the pipeline. Data-quality problems
// are logged and absorbed, never raised.
func (s *detectionServiceImpl) loadSnapshot() ([]models.Transaction, error) {
	transactions, err := model.ListExpenses(s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotLoadFailed, err)
	}

	valid := make([]models.Transaction, 0, len(transactions))
	quarantined := 0
	for _, tx := range transactions {
		if err := validation.ValidateTransaction(tx); err != nil {
			logger.L.Warn("Quarantining malformed transaction", "id", tx.ID, "error", err)
			quarantined++
			continue
		}
		tx.Description = validation.SanitizeDescription(tx.Description)
		valid = append(valid, tx)
	}
	if quarantined > 0 {
		logger.L.Info("Snapshot loaded with quarantined records", "total", len(transactions), "quarantined", quarantined)
	}
	return valid, nil
}

func (s *detectionServiceImpl) knownFees() ([]models.TrackedRecord, error) {
	fees, err := model.ListFees(s.db)
	if err != nil {
		return nil, err
	}
	records := make([]models.TrackedRecord, 0, len(fees))
	for _, fee := range fees {
		records = append(records, models.TrackedRecord{
			Name:   fee.Description,
			Amount: fee.Amount,
			Type:   "fee",
		})
	}
	return records, nil
}

func (s *detectionServiceImpl) knownSubscriptions() ([]models.TrackedRecord, error) {
	subscriptions, err := model.ListSubscriptions(s.db)
	if err != nil {
		return nil, err
	}
	records := make([]models.TrackedRecord, 0, len(subscriptions))
	for _, sub := range subscriptions {
		name := sub.Description
		if name == "" {
			name = sub.Name
		}
		records = append(records, models.TrackedRecord{
			Name:   name,
			Amount: sub.Amount,
			Type:   "subscription",
		})
	}
	return records, nil
}

func truncateFees(items []models.DetectedFee, limit int) []models.DetectedFee {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}

func truncateSubscriptions(items []models.DetectedSubscription, limit int) []models.DetectedSubscription {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
