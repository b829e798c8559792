package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// ReportRepository reads the per-department aggregates the report
// summary is built from. Sums and averages are computed in SQL on the
// numeric column, so no float rounding sneaks in.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) DepartmentStats(ctx context.Context) ([]ports.DepartmentStat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.name, count(e.id),
			COALESCE(sum(e.salary), 0),
			COALESCE(round(avg(e.salary), 2), 0)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("department stats: %w", err)
	}
	defer rows.Close()

	var stats []ports.DepartmentStat
	for rows.Next() {
		var st ports.DepartmentStat
		if err := rows.Scan(&st.DepartmentID, &st.DepartmentName, &st.EmployeeCount,
			&st.TotalSalary, &st.AverageSalary); err != nil {
			return nil, fmt.Errorf("scan department stat: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
