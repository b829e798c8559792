package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// ReportService aggregates workforce figures per department. Summaries
// are served from the cache when fresh; cache failures degrade to a
// recompute, never to an error.
type ReportService struct {
	repo  ports.ReportRepository
	cache ports.ReportCache
	log   zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, cache ports.ReportCache, log zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, cache: cache, log: log}
}

func (s *ReportService) Summary(ctx context.Context) (*ports.ReportSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("report cache read failed, recomputing")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.DepartmentStats(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ports.ReportSummary{
		ByDepartment: stats,
		GeneratedAt:  time.Now().UTC(),
	}
	total := decimal.Zero
	for _, st := range stats {
		summary.TotalEmployees += st.EmployeeCount
		total = total.Add(st.TotalSalary)
	}
	summary.TotalDepartments = len(stats)
	summary.TotalSalary = total

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.log.Warn().Err(err).Msg("report cache write failed")
		}
	}
	return summary, nil
}
