package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// InitAuditDB (re)establishes the audit schema. The reset is destructive and
// idempotent: running it twice yields the same empty table, and callers must
// not rely on cross-session history surviving a restart.
func InitAuditDB(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	schema := `
	DROP TABLE IF EXISTS audit_log;
	CREATE TABLE audit_log (
		id                TEXT PRIMARY KEY,
		created_at        DATETIME NOT NULL,
		prompt            TEXT NOT NULL,
		customer_text     TEXT NOT NULL,
		accuracy          INTEGER NOT NULL,
		tone              INTEGER NOT NULL,
		prod_latency_ms   INTEGER NOT NULL,
		shadow_accuracy   INTEGER,
		shadow_latency_ms INTEGER,
		dissimilarity     REAL,
		rating            INTEGER,
		comment           TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX idx_audit_created_at ON audit_log(created_at);
	`
	_, err = db.Exec(schema)
	return err
}

// AppendAuditRecord writes one record within its own connection scope: the
// handle is opened, written, and closed inside this call, including on the
// write-failure path. Records are write-once; there is no update path.
func AppendAuditRecord(path string, rec AuditRecord) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var shadowLatencyMs any
	if rec.ShadowLatency != nil {
		shadowLatencyMs = rec.ShadowLatency.Milliseconds()
	}

	_, err = db.Exec(
		`INSERT INTO audit_log
		 (id, created_at, prompt, customer_text, accuracy, tone, prod_latency_ms,
		  shadow_accuracy, shadow_latency_ms, dissimilarity, rating, comment)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, rec.Prompt, rec.CustomerText,
		rec.Accuracy, rec.Tone, rec.ProdLatency.Milliseconds(),
		rec.ShadowAccuracy, shadowLatencyMs, rec.Dissimilarity, rec.Rating, rec.Comment,
	)
	return err
}

// GetAuditRecords returns all records in insertion order.
func GetAuditRecords(path string) ([]AuditRecord, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT id, created_at, prompt, customer_text, accuracy, tone, prod_latency_ms,
		        shadow_accuracy, shadow_latency_ms, dissimilarity, rating, comment
		 FROM audit_log ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AuditRecord
	for rows.Next() {
		var rec AuditRecord
		var prodLatencyMs int64
		var shadowAccuracy, shadowLatencyMs, rating sql.NullInt64
		var dissimilarity sql.NullFloat64
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &rec.Prompt, &rec.CustomerText,
			&rec.Accuracy, &rec.Tone, &prodLatencyMs,
			&shadowAccuracy, &shadowLatencyMs, &dissimilarity, &rating, &rec.Comment,
		); err != nil {
			return nil, err
		}
		rec.ProdLatency = time.Duration(prodLatencyMs) * time.Millisecond
		if shadowAccuracy.Valid {
			v := int(shadowAccuracy.Int64)
			rec.ShadowAccuracy = &v
		}
		if shadowLatencyMs.Valid {
			v := time.Duration(shadowLatencyMs.Int64) * time.Millisecond
			rec.ShadowLatency = &v
		}
		if dissimilarity.Valid {
			v := dissimilarity.Float64
			rec.Dissimilarity = &v
		}
		if rating.Valid {
			v := int(rating.Int64)
			rec.Rating = &v
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func CountAuditRecords(path string) (int, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM audit_log`).Scan(&count)
	return count, err
}
