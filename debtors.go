package clubadmin

import (
	"context"
	"sort"
	"time"
)

// monthKey identifies one calendar month for payment lookups.
type monthKey struct {
	year  int
	month int
}

// ComputeDebtors builds the debtor report locally from already-fetched
// players and payments, without another round trip. The window is the last
// windowMonths calendar months ending at now's month, inclusive. A month is
// unpaid when no payment row exists for that player and month, whatever the
// amount; what is owed is the player's current category quota per unpaid
// month. Players without a category cannot be priced and are listed in
// Uncategorized instead of counting as zero-quota debtors.
func ComputeDebtors(players []Player, payments []Payment, now time.Time, windowMonths int) *DebtorsReport {
	if windowMonths <= 0 {
		windowMonths = 12
	}

	window := make([]monthKey, 0, windowMonths)
	year, month := now.Year(), int(now.Month())
	for i := 0; i < windowMonths; i++ {
		window = append(window, monthKey{year: year, month: month})
		month--
		if month == 0 {
			month = 12
			year--
		}
	}
	// Oldest first, so unpaid months read chronologically.
	sort.Slice(window, func(i, j int) bool {
		if window[i].year != window[j].year {
			return window[i].year < window[j].year
		}
		return window[i].month < window[j].month
	})

	paid := make(map[string]map[monthKey]bool, len(players))
	for _, p := range payments {
		key := monthKey{year: p.Year, month: p.Month}
		if paid[p.PlayerID] == nil {
			paid[p.PlayerID] = make(map[monthKey]bool)
		}
		paid[p.PlayerID][key] = true
	}

	report := &DebtorsReport{
		Debtors: []Debtor{},
		Summary: DebtorsSummary{
			CurrentYear:   now.Year(),
			CurrentMonth:  int(now.Month()),
			MonthsChecked: windowMonths,
		},
	}

	totalUnpaidMonths := 0
	for _, player := range players {
		if player.Category.ID == "" {
			report.Uncategorized = append(report.Uncategorized, player.ID)
			continue
		}

		quota := player.Category.Quota
		playerPaid := paid[player.ID]

		var unpaid []UnpaidMonth
		for _, key := range window {
			if playerPaid[key] {
				continue
			}
			unpaid = append(unpaid, UnpaidMonth{
				Month:     key.month,
				Year:      key.year,
				MonthName: MonthName(key.month),
				Amount:    quota,
			})
		}
		if len(unpaid) == 0 {
			continue
		}

		name := player.FullName
		if name == "" {
			name = player.FirstName + " " + player.LastName
		}
		owed := float64(len(unpaid)) * quota

		report.Debtors = append(report.Debtors, Debtor{
			PlayerID:          player.ID,
			PlayerName:        name,
			PlayerEmail:       player.Email,
			Category:          player.Category.Name,
			CategoryQuota:     quota,
			UnpaidMonthsCount: len(unpaid),
			UnpaidMonths:      unpaid,
			TotalOwed:         owed,
		})

		report.Summary.TotalDebtors++
		report.Summary.TotalOwed += owed
		totalUnpaidMonths += len(unpaid)
	}

	// Worst debtors first.
	sort.SliceStable(report.Debtors, func(i, j int) bool {
		return report.Debtors[i].TotalOwed > report.Debtors[j].TotalOwed
	})

	if report.Summary.TotalDebtors > 0 {
		report.Summary.AverageMonthsUnpaid = float64(totalUnpaidMonths) / float64(report.Summary.TotalDebtors)
	}

	return report
}

// LocalDebtors fetches the full roster and payment history and computes the
// debtor report client-side, honoring the configured window. Useful when
// the caller already needs both datasets anyway or wants a window the
// server does not offer.
func (c *Client) LocalDebtors(ctx context.Context) (*DebtorsReport, error) {
	players, err := c.Players().List(ctx, PlayerFilter{})
	if err != nil {
		return nil, err
	}
	payments, err := c.Payments().List(ctx, PaymentFilter{})
	if err != nil {
		return nil, err
	}
	return ComputeDebtors(players, payments, time.Now(), c.config.Debtors.WindowMonths), nil
}
