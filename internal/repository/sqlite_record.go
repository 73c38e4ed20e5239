package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/CalebGreaves/tta-summary-dev/internal/db"
)

// recordColumns is the canonical SELECT column list for records.
const recordColumns = `id, collection, name, created_at, updated_at`

// SQLiteRecordRepo implements RecordRepo over the generic record store
// tables (records, record_fields, record_links).
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(dbtx db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: dbtx}
}

func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *StoredRecord) error {
	query := `INSERT INTO records (id, collection, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.RecordID,
		rec.Collection,
		rec.Name,
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}

	for fieldID, value := range rec.Strings {
		if err := r.insertField(ctx, rec.RecordID, fieldID, "string", value); err != nil {
			return err
		}
	}
	for fieldID, value := range rec.Dates {
		if err := r.insertField(ctx, rec.RecordID, fieldID, "date", value.Format(dateLayout)); err != nil {
			return err
		}
	}
	for fieldID, targets := range rec.LinkLists {
		for pos, target := range targets {
			query := `INSERT INTO record_links (record_id, field_id, target_id, position)
				VALUES (?, ?, ?, ?)`
			if _, err := r.db.ExecContext(ctx, query, rec.RecordID, fieldID, target, pos); err != nil {
				return fmt.Errorf("inserting record link: %w", err)
			}
		}
	}
	return nil
}

func (r *SQLiteRecordRepo) insertField(ctx context.Context, recordID, fieldID, kind, value string) error {
	query := `INSERT INTO record_fields (record_id, field_id, kind, value) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, recordID, fieldID, kind, value); err != nil {
		return fmt.Errorf("inserting record field: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) GetByID(ctx context.Context, collection, id string) (*StoredRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ? AND collection = ?`
	row := r.db.QueryRowContext(ctx, query, id, collection)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadFields(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteRecordRepo) ListByCollection(ctx context.Context, collection string) ([]*StoredRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE collection = ? ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("listing records by collection: %w", err)
	}
	defer rows.Close()
	return r.scanAndLoad(ctx, rows)
}

// ListLinkedTo returns the records of a collection whose link field contains
// parentID, ordered by link position then name. An empty link field yields
// an empty result rather than an error, so a misconfigured field degrades to
// "no linked records".
func (r *SQLiteRecordRepo) ListLinkedTo(ctx context.Context, collection, linkField, parentID string) ([]*StoredRecord, error) {
	if linkField == "" {
		return nil, nil
	}
	query := `SELECT ` + prefixedRecordColumns + ` FROM records r
		JOIN record_links l ON l.record_id = r.id
		WHERE r.collection = ? AND l.field_id = ? AND l.target_id = ?
		ORDER BY l.position, r.name, r.id`
	rows, err := r.db.QueryContext(ctx, query, collection, linkField, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing linked records: %w", err)
	}
	defer rows.Close()
	return r.scanAndLoad(ctx, rows)
}

const prefixedRecordColumns = `r.id, r.collection, r.name, r.created_at, r.updated_at`

func (r *SQLiteRecordRepo) CountByCollection(ctx context.Context, collection string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE collection = ?`, collection).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func (r *SQLiteRecordRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	return nil
}

// scanRecord scans a single record from a *sql.Row.
func scanRecord(row *sql.Row) (*StoredRecord, error) {
	var rec StoredRecord
	var createdAtStr, updatedAtStr string
	err := row.Scan(&rec.RecordID, &rec.Collection, &rec.Name, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	if err := populateTimes(&rec, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *SQLiteRecordRepo) scanAndLoad(ctx context.Context, rows *sql.Rows) ([]*StoredRecord, error) {
	var records []*StoredRecord
	for rows.Next() {
		var rec StoredRecord
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&rec.RecordID, &rec.Collection, &rec.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		if err := populateTimes(&rec, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	for _, rec := range records {
		if err := r.loadFields(ctx, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func populateTimes(rec *StoredRecord, createdAtStr, updatedAtStr string) error {
	var err error
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}

// loadFields populates a record's typed fields and link lists. Date values
// that fail to parse are dropped, degrading to "no date" for that field.
func (r *SQLiteRecordRepo) loadFields(ctx context.Context, rec *StoredRecord) error {
	rec.Strings = make(map[string]string)
	rec.Dates = make(map[string]time.Time)
	rec.LinkLists = make(map[string][]string)

	rows, err := r.db.QueryContext(ctx,
		`SELECT field_id, kind, value FROM record_fields WHERE record_id = ?`, rec.RecordID)
	if err != nil {
		return fmt.Errorf("loading record fields: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var fieldID, kind, value string
		if err := rows.Scan(&fieldID, &kind, &value); err != nil {
			return fmt.Errorf("scanning record field: %w", err)
		}
		switch kind {
		case "date":
			if t, err := time.Parse(dateLayout, value); err == nil {
				rec.Dates[fieldID] = t
			}
		default:
			rec.Strings[fieldID] = value
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating record fields: %w", err)
	}

	linkRows, err := r.db.QueryContext(ctx,
		`SELECT field_id, target_id FROM record_links WHERE record_id = ? ORDER BY position`, rec.RecordID)
	if err != nil {
		return fmt.Errorf("loading record links: %w", err)
	}
	defer linkRows.Close()
	for linkRows.Next() {
		var fieldID, targetID string
		if err := linkRows.Scan(&fieldID, &targetID); err != nil {
			return fmt.Errorf("scanning record link: %w", err)
		}
		rec.LinkLists[fieldID] = append(rec.LinkLists[fieldID], targetID)
	}
	if err := linkRows.Err(); err != nil {
		return fmt.Errorf("iterating record links: %w", err)
	}
	return nil
}
