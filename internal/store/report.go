package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/proptrack-io/property-management-service/internal/model"
	"github.com/proptrack-io/property-management-service/internal/monitoring"
)

// GenerateMonthlyReport computes the owner payout for one building and month
// (YYYY-MM) from the payments and expenses currently in the store. Any
// existing report for the same building and month is replaced, so
// regeneration always reflects the underlying data. An unknown building id
// produces no report and no error.
//
// Rent is attributed through current occupancy: only payments from tenants
// still linked to one of the building's units are counted. Monetary outputs
// are rounded to two decimals here and nowhere else.
func (s *Store) GenerateMonthlyReport(ctx context.Context, buildingID, month string) (*model.MonthlyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var building *model.Building
	for i := range s.data.Buildings {
		if s.data.Buildings[i].ID == buildingID {
			building = &s.data.Buildings[i]
			break
		}
	}
	if building == nil {
		return nil, nil
	}

	unitIDs := make(map[string]bool)
	for _, u := range s.data.Units {
		if u.BuildingID == buildingID {
			unitIDs[u.ID] = true
		}
	}
	tenantIDs := make(map[string]bool)
	for _, t := range s.data.Tenants {
		if unitIDs[t.UnitID] {
			tenantIDs[t.ID] = true
		}
	}

	totalRent := decimal.Zero
	for _, p := range s.data.Payments {
		if tenantIDs[p.TenantID] && p.Month == month {
			totalRent = totalRent.Add(decimal.NewFromFloat(p.Amount))
		}
	}
	totalExpenses := decimal.Zero
	for _, e := range s.data.Expenses {
		if e.BuildingID == buildingID && e.Month == month {
			totalExpenses = totalExpenses.Add(decimal.NewFromFloat(e.Amount))
		}
	}

	fee := totalRent.
		Mul(decimal.NewFromFloat(building.ManagementFeePercent)).
		Div(decimal.NewFromInt(100))
	net := totalRent.Sub(fee).Sub(totalExpenses)

	report := model.MonthlyReport{
		ID:                 s.nextID("r"),
		BuildingID:         buildingID,
		Month:              month,
		TotalRentCollected: totalRent.Round(2).InexactFloat64(),
		ManagementFee:      fee.Round(2).InexactFloat64(),
		TotalExpenses:      totalExpenses.Round(2).InexactFloat64(),
		NetPayout:          net.Round(2).InexactFloat64(),
		GeneratedDate:      time.Now().UTC().Format(time.RFC3339),
	}

	kept := s.data.Reports[:0]
	for _, r := range s.data.Reports {
		if !(r.BuildingID == buildingID && r.Month == month) {
			kept = append(kept, r)
		}
	}
	s.data.Reports = append(kept, report)

	monitoring.RecordMutations.WithLabelValues("reports", "generate").Inc()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &report, nil
}
