package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitebrief"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitebrief.SummaryService = (*SummaryService)(nil)

const summaryColumns = "id, url, locale, title, owner, meta_description, markdown, text, content_hash, created_at"

// SummaryService implements sitebrief.SummaryService using SQLite.
type SummaryService struct {
	db  *DB
	now func() time.Time
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(db *DB) *SummaryService {
	return &SummaryService{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateSummary stores a new summary. The content hash covers the extracted
// page text so repeated summaries of an unchanged page can be recognized.
func (s *SummaryService) CreateSummary(ctx context.Context, summary *sitebrief.Summary) error {
	if err := summary.Validate(); err != nil {
		return err
	}

	summary.ID = uuid.New().String()
	summary.CreatedAt = s.now().UTC().Truncate(time.Second)
	summary.ContentHash = hashContent(summary.Text)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO summaries (`+summaryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, summary.ID, summary.URL, string(summary.Locale), summary.Title, summary.Owner,
		summary.MetaDescription, summary.Markdown, summary.Text, summary.ContentHash,
		summary.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSummaryByID retrieves a summary by ID.
func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*sitebrief.Summary, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+summaryColumns+" FROM summaries WHERE id = ?", id)

	summary, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, sitebrief.Errorf(sitebrief.ENOTFOUND, "summary not found")
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// FindSummaries retrieves summaries matching the filter, newest first.
func (s *SummaryService) FindSummaries(ctx context.Context, filter sitebrief.SummaryFilter) ([]*sitebrief.Summary, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + summaryColumns + " FROM summaries WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Locale != nil {
		query.WriteString(" AND locale = ?")
		args = append(args, string(*filter.Locale))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]*sitebrief.Summary, 0)
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (*sitebrief.Summary, error) {
	var summary sitebrief.Summary
	var locale, createdAt string

	if err := row.Scan(&summary.ID, &summary.URL, &locale, &summary.Title, &summary.Owner,
		&summary.MetaDescription, &summary.Markdown, &summary.Text, &summary.ContentHash,
		&createdAt); err != nil {
		return nil, err
	}

	summary.Locale = sitebrief.Locale(locale)

	var err error
	summary.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
