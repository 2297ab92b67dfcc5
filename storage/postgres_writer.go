package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"boataround-scraper/models"
)

// PostgresWriter persists assembled rows to PostgreSQL. Unavailable amounts
// are stored as NULL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS boats (
			id                SERIAL PRIMARY KEY,
			name              TEXT         NOT NULL,
			marina            TEXT         NOT NULL,
			charter           TEXT         NOT NULL,
			rating            NUMERIC(4,2) NOT NULL DEFAULT 0,
			norefund_price    INTEGER,
			partrefund_price  INTEGER,
			freecancel_price  INTEGER,
			transit_log       INTEGER,
			refund_deposit    INTEGER,
			deposit_insurance INTEGER,
			total_price       INTEGER,
			year              TEXT         NOT NULL DEFAULT 'NA',
			engine            TEXT         NOT NULL DEFAULT 'NA',
			people            TEXT         NOT NULL DEFAULT 'NA',
			cabins            TEXT         NOT NULL DEFAULT 'NA',
			toilets           TEXT         NOT NULL DEFAULT 'NA',
			draught           TEXT         NOT NULL DEFAULT 'NA',
			beam              TEXT         NOT NULL DEFAULT 'NA',
			length            TEXT         NOT NULL DEFAULT 'NA',
			fuel_tank         TEXT         NOT NULL DEFAULT 'NA',
			water_tank        TEXT         NOT NULL DEFAULT 'NA',
			url               TEXT         UNIQUE NOT NULL,
			created_at        TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_boats_total_price ON boats(total_price);
		CREATE INDEX IF NOT EXISTS idx_boats_marina      ON boats(marina);
		CREATE INDEX IF NOT EXISTS idx_boats_rating      ON boats(rating);
	`)
	return err
}

// Clear deletes all existing boats from the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM boats")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts all rows, clearing old data first.
func (pw *PostgresWriter) Write(boats []*models.Boat) error {
	if len(boats) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(boats); i += batchSize {
		end := i + batchSize
		if end > len(boats) {
			end = len(boats)
		}
		if err := pw.insertBatch(boats[i:end]); err != nil {
			return err
		}
	}
	return nil
}

const boatColumnCount = 22

func (pw *PostgresWriter) insertBatch(batch []*models.Boat) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*boatColumnCount)

	for idx, b := range batch {
		base := idx * boatColumnCount
		placeholders := make([]string, boatColumnCount)
		for i := range placeholders {
			placeholders[i] = fmt.Sprintf("$%d", base+i+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			b.Name, b.Marina, b.Charter, b.Rating,
			amountArg(b.NoRefundPrice), amountArg(b.PartRefundPrice), amountArg(b.FreeCancelPrice),
			amountArg(b.TransitLog), amountArg(b.RefundDeposit), amountArg(b.DepositInsurance),
			amountArg(b.TotalPrice),
			b.Year, b.Engine, b.People, b.Cabins, b.Toilets,
			b.Draught, b.Beam, b.Length, b.FuelTank, b.WaterTank, b.URL)
	}

	query := fmt.Sprintf(`
		INSERT INTO boats (name, marina, charter, rating,
			norefund_price, partrefund_price, freecancel_price,
			transit_log, refund_deposit, deposit_insurance, total_price,
			year, engine, people, cabins, toilets,
			draught, beam, length, fuel_tank, water_tank, url)
		VALUES %s
		ON CONFLICT (url) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves all stored boats in insertion order.
func (pw *PostgresWriter) FetchAll() ([]*models.Boat, error) {
	rows, err := pw.db.Query(`
		SELECT name, marina, charter, rating,
			norefund_price, partrefund_price, freecancel_price,
			transit_log, refund_deposit, deposit_insurance, total_price,
			year, engine, people, cabins, toilets,
			draught, beam, length, fuel_tank, water_tank, url
		FROM boats
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var boats []*models.Boat
	for rows.Next() {
		b := &models.Boat{}
		var noRefund, partRefund, freeCancel, transitLog, refundDep, depIns, total sql.NullInt64
		if err := rows.Scan(
			&b.Name, &b.Marina, &b.Charter, &b.Rating,
			&noRefund, &partRefund, &freeCancel,
			&transitLog, &refundDep, &depIns, &total,
			&b.Year, &b.Engine, &b.People, &b.Cabins, &b.Toilets,
			&b.Draught, &b.Beam, &b.Length, &b.FuelTank, &b.WaterTank, &b.URL,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		b.NoRefundPrice = amountFrom(noRefund)
		b.PartRefundPrice = amountFrom(partRefund)
		b.FreeCancelPrice = amountFrom(freeCancel)
		b.TransitLog = amountFrom(transitLog)
		b.RefundDeposit = amountFrom(refundDep)
		b.DepositInsurance = amountFrom(depIns)
		b.TotalPrice = amountFrom(total)
		boats = append(boats, b)
	}
	return boats, rows.Err()
}

func amountArg(a models.Amount) interface{} {
	if !a.Valid {
		return nil
	}
	return int64(a.Value)
}

func amountFrom(n sql.NullInt64) models.Amount {
	if !n.Valid {
		return models.Amount{}
	}
	return models.AmountOf(int(n.Int64))
}
