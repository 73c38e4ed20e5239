package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/CalebGreaves/tta-summary-dev/internal/db"
	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// reportColumns is the canonical SELECT column list for report_requests.
const reportColumns = `id, top_level, top_level_id, bottom_level, start_date, end_date,
		status, compact_tree, summary, error_text, created_at, updated_at`

// SQLiteReportRequestRepo implements ReportRequestRepo using a SQLite database.
type SQLiteReportRequestRepo struct {
	db db.DBTX
}

// NewSQLiteReportRequestRepo creates a new SQLiteReportRequestRepo.
func NewSQLiteReportRequestRepo(dbtx db.DBTX) *SQLiteReportRequestRepo {
	return &SQLiteReportRequestRepo{db: dbtx}
}

func (r *SQLiteReportRequestRepo) Create(ctx context.Context, req *domain.ReportRequest) error {
	query := `INSERT INTO report_requests (id, top_level, top_level_id, bottom_level,
		start_date, end_date, status, compact_tree, summary, error_text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		string(req.TopLevel),
		req.TopLevelID,
		string(req.BottomLevel),
		nullableTimeToString(req.Range.Start, dateLayout),
		nullableTimeToString(req.Range.End, dateLayout),
		string(req.Status),
		req.CompactTree,
		req.Summary,
		req.ErrorText,
		req.CreatedAt.Format(time.RFC3339),
		req.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting report request: %w", err)
	}
	return nil
}

func (r *SQLiteReportRequestRepo) GetByID(ctx context.Context, id string) (*domain.ReportRequest, error) {
	query := `SELECT ` + reportColumns + ` FROM report_requests WHERE id = ?`
	return scanReport(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteReportRequestRepo) List(ctx context.Context) ([]*domain.ReportRequest, error) {
	query := `SELECT ` + reportColumns + ` FROM report_requests ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing report requests: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

// NextPending returns the oldest pending request, or ErrNotFound when the
// queue is empty.
func (r *SQLiteReportRequestRepo) NextPending(ctx context.Context) (*domain.ReportRequest, error) {
	query := `SELECT ` + reportColumns + ` FROM report_requests
		WHERE status = ? ORDER BY created_at LIMIT 1`
	return scanReport(r.db.QueryRowContext(ctx, query, string(domain.ReportPending)))
}

func (r *SQLiteReportRequestRepo) Update(ctx context.Context, req *domain.ReportRequest) error {
	query := `UPDATE report_requests SET status = ?, compact_tree = ?, summary = ?,
		error_text = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		string(req.Status),
		req.CompactTree,
		req.Summary,
		req.ErrorText,
		req.UpdatedAt.Format(time.RFC3339),
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("updating report request: %w", err)
	}
	return nil
}

type reportScanner interface {
	Scan(dest ...any) error
}

func scanReportRow(row reportScanner) (*domain.ReportRequest, error) {
	var req domain.ReportRequest
	var topLevel, bottomLevel, status, createdAtStr, updatedAtStr string
	var startStr, endStr sql.NullString

	err := row.Scan(
		&req.ID, &topLevel, &req.TopLevelID, &bottomLevel, &startStr, &endStr,
		&status, &req.CompactTree, &req.Summary, &req.ErrorText,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	req.TopLevel = domain.Level(topLevel)
	req.BottomLevel = domain.Level(bottomLevel)
	req.Status = domain.ReportStatus(status)
	req.Range.Start = parseNullableTime(startStr, dateLayout)
	req.Range.End = parseNullableTime(endStr, dateLayout)

	req.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	req.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &req, nil
}

func scanReport(row *sql.Row) (*domain.ReportRequest, error) {
	req, err := scanReportRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("report request: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning report request: %w", err)
	}
	return req, nil
}

func scanReports(rows *sql.Rows) ([]*domain.ReportRequest, error) {
	var reqs []*domain.ReportRequest
	for rows.Next() {
		req, err := scanReportRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report request row: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report requests: %w", err)
	}
	return reqs, nil
}
