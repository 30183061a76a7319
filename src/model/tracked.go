// backend/src/model/tracked.go
package model

import (
	"database/sql"
	"time"

	"github.com/username/finsight/backend/src/models"
)

// ListFees returns all confirmed fee records ordered by date.
func ListFees(db *sql.DB) ([]models.Fee, error) {
	rows, err := db.Query(`
		SELECT id, category_name, category_type, COALESCE(institution_name, ''), description, amount, date, recurring
		FROM fees
		ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := []models.Fee{}
	for rows.Next() {
		var fee models.Fee
		var dateStr string
		if err := rows.Scan(&fee.ID, &fee.CategoryName, &fee.CategoryType, &fee.InstitutionName,
			&fee.Description, &fee.Amount, &dateStr, &fee.Recurring); err != nil {
			return nil, err
		}
		if date, parseErr := time.Parse(dateLayout, dateStr); parseErr == nil {
			fee.Date = date
		}
		fees = append(fees, fee)
	}
	return fees, rows.Err()
}

// InsertFee stores a confirmed fee record and returns its ID.
func InsertFee(db *sql.DB, fee models.Fee) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO fees (category_name, category_type, institution_name, description, amount, date, recurring)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fee.CategoryName, fee.CategoryType, fee.InstitutionName, fee.Description,
		fee.Amount, fee.Date.Format(dateLayout), fee.Recurring)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListSubscriptions returns all confirmed subscription records ordered by date.
func ListSubscriptions(db *sql.DB) ([]models.Subscription, error) {
	rows, err := db.Query(`
		SELECT id, name, category, COALESCE(institution_name, ''), COALESCE(description, ''), amount, frequency, date, active
		FROM subscriptions
		ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscriptions := []models.Subscription{}
	for rows.Next() {
		var sub models.Subscription
		var dateStr string
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Category, &sub.InstitutionName,
			&sub.Description, &sub.Amount, &sub.Frequency, &dateStr, &sub.Active); err != nil {
			return nil, err
		}
		if date, parseErr := time.Parse(dateLayout, dateStr); parseErr == nil {
			sub.Date = date
		}
		subscriptions = append(subscriptions, sub)
	}
	return subscriptions, rows.Err()
}

// InsertSubscription stores a confirmed subscription record and returns its ID.
func InsertSubscription(db *sql.DB, sub models.Subscription) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO subscriptions (name, category, institution_name, description, amount, frequency, date, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.Name, sub.Category, sub.InstitutionName, sub.Description,
		sub.Amount, sub.Frequency, sub.Date.Format(dateLayout), sub.Active)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
