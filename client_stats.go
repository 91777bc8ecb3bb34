package clubadmin

import (
	"context"
	"strconv"
)

// StatsClient serves the reporting endpoints under /stats.
type StatsClient struct {
	gw *Client
}

func (sc *StatsClient) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := sc.gw.Get(ctx, "/stats/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MonthlyIncome returns the per-month income rows for year. Zero means the
// server's current year.
func (sc *StatsClient) MonthlyIncome(ctx context.Context, year int) (*MonthlyIncomeReport, error) {
	endpoint := "/stats/monthly-income"
	if year != 0 {
		endpoint += "?year=" + strconv.Itoa(year)
	}

	var out MonthlyIncomeReport
	if err := sc.gw.Get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Debtors returns the server-computed debtor report. See [ComputeDebtors]
// for the equivalent local computation over already-fetched data.
func (sc *StatsClient) Debtors(ctx context.Context) (*DebtorsReport, error) {
	var out DebtorsReport
	if err := sc.gw.Get(ctx, "/stats/debtors", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
