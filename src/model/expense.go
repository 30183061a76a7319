// backend/src/model/expense.go
package model

import (
	"database/sql"
	"time"

	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/models"
)

const dateLayout = "2006-01-02"

// ListExpenses returns the full expense snapshot ordered by date. Rows with
// an unparseable date keep a zero Date and are quarantined downstream by the
// ingestion validator.
func ListExpenses(db *sql.DB) ([]models.Transaction, error) {
	rows, err := db.Query(`
		SELECT id, description, amount, date, COALESCE(category, ''), COALESCE(payment_method, '')
		FROM expenses
		ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		var dateStr string
		if err := rows.Scan(&tx.ID, &tx.Description, &tx.Amount, &dateStr, &tx.Category, &tx.PaymentMethod); err != nil {
			return nil, err
		}
		date, parseErr := time.Parse(dateLayout, dateStr)
		if parseErr != nil {
			logger.L.Warn("Expense row has unparseable date, leaving for quarantine", "id", tx.ID, "date", dateStr)
		} else {
			tx.Date = date
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// InsertExpense stores one expense row and returns its ID.
func InsertExpense(db *sql.DB, tx models.Transaction) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO expenses (description, amount, date, category, payment_method)
		VALUES (?, ?, ?, ?, ?)`,
		tx.Description, tx.Amount, tx.Date.Format(dateLayout), tx.Category, tx.PaymentMethod)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
