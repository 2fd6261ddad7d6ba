package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	resultsJSON, err := json.Marshal(report.Results)
	if err != nil {
		return fmt.Errorf("marshal report results: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
INSERT INTO reports (title, query, results, generated_at, status)
VALUES ($1,$2,$3,$4,$5)
RETURNING id
`,
		report.Title, report.Query, resultsJSON, report.GeneratedAt, string(report.Status),
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *ReportRepository) List(ctx context.Context) ([]domain.Report, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, query, results, generated_at, status
FROM reports
ORDER BY generated_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]domain.Report, 0)
	for rows.Next() {
		var report domain.Report
		var resultsRaw []byte
		var status string
		if err := rows.Scan(&report.ID, &report.Title, &report.Query, &resultsRaw, &report.GeneratedAt, &status); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		if err := json.Unmarshal(resultsRaw, &report.Results); err != nil {
			return nil, fmt.Errorf("unmarshal report results: %w", err)
		}
		report.Status = domain.ReportStatus(status)
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}
