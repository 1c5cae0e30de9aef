package store

import (
	"context"

	"github.com/proptrack-io/property-management-service/internal/model"
	"github.com/proptrack-io/property-management-service/internal/monitoring"
)

// AddOwner assigns a fresh id, appends and persists.
func (s *Store) AddOwner(ctx context.Context, owner model.Owner) (model.Owner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner.ID = s.nextID("o")
	s.data.Owners = append(s.data.Owners, owner)
	monitoring.RecordMutations.WithLabelValues("owners", "add").Inc()
	return owner, s.persist(ctx)
}

// DeleteOwner removes the owner unless any building still references it.
func (s *Store) DeleteOwner(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.data.Buildings {
		if b.OwnerID == id {
			return &ConflictError{Reason: "Cannot delete owner with active buildings."}
		}
	}
	kept := s.data.Owners[:0]
	for _, o := range s.data.Owners {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.data.Owners = kept
	monitoring.RecordMutations.WithLabelValues("owners", "delete").Inc()
	return s.persist(ctx)
}

// Owners returns all owners.
func (s *Store) Owners() []model.Owner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Owner(nil), s.data.Owners...)
}

// AddBuilding assigns a fresh id, appends and persists.
func (s *Store) AddBuilding(ctx context.Context, building model.Building) (model.Building, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	building.ID = s.nextID("b")
	s.data.Buildings = append(s.data.Buildings, building)
	monitoring.RecordMutations.WithLabelValues("buildings", "add").Inc()
	return building, s.persist(ctx)
}

// DeleteBuilding removes the building and cascades to its units, expenses and
// reports. It fails while any tenant still occupies one of the units.
func (s *Store) DeleteBuilding(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unitIDs := make(map[string]bool)
	for _, u := range s.data.Units {
		if u.BuildingID == id {
			unitIDs[u.ID] = true
		}
	}
	for _, t := range s.data.Tenants {
		if unitIDs[t.UnitID] {
			return &ConflictError{Reason: "Cannot delete building with active tenants."}
		}
	}

	buildings := s.data.Buildings[:0]
	for _, b := range s.data.Buildings {
		if b.ID != id {
			buildings = append(buildings, b)
		}
	}
	s.data.Buildings = buildings

	units := s.data.Units[:0]
	for _, u := range s.data.Units {
		if u.BuildingID != id {
			units = append(units, u)
		}
	}
	s.data.Units = units

	expenses := s.data.Expenses[:0]
	for _, e := range s.data.Expenses {
		if e.BuildingID != id {
			expenses = append(expenses, e)
		}
	}
	s.data.Expenses = expenses

	reports := s.data.Reports[:0]
	for _, r := range s.data.Reports {
		if r.BuildingID != id {
			reports = append(reports, r)
		}
	}
	s.data.Reports = reports

	monitoring.RecordMutations.WithLabelValues("buildings", "delete").Inc()
	return s.persist(ctx)
}

// Buildings returns all buildings.
func (s *Store) Buildings() []model.Building {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Building(nil), s.data.Buildings...)
}

// AddUnit assigns a fresh id, appends and persists.
func (s *Store) AddUnit(ctx context.Context, unit model.Unit) (model.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unit.ID = s.nextID("u")
	s.data.Units = append(s.data.Units, unit)
	monitoring.RecordMutations.WithLabelValues("units", "add").Inc()
	return unit, s.persist(ctx)
}

// Units returns units, optionally filtered by building ("" returns all).
func (s *Store) Units(buildingID string) []model.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	if buildingID == "" {
		return append([]model.Unit(nil), s.data.Units...)
	}
	var out []model.Unit
	for _, u := range s.data.Units {
		if u.BuildingID == buildingID {
			out = append(out, u)
		}
	}
	return out
}

// UpdateUnitStatus writes a unit's occupancy status in place. Unknown unit
// ids are a silent no-op.
func (s *Store) UpdateUnitStatus(ctx context.Context, unitID string, status model.OccupancyStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateUnitStatusLocked(ctx, unitID, status)
}

func (s *Store) updateUnitStatusLocked(ctx context.Context, unitID string, status model.OccupancyStatus) error {
	for i := range s.data.Units {
		if s.data.Units[i].ID == unitID {
			s.data.Units[i].Status = status
			monitoring.RecordMutations.WithLabelValues("units", "update").Inc()
			return s.persist(ctx)
		}
	}
	return nil
}

// AddTenant creates the tenant and marks its unit Occupied as one logical
// step.
func (s *Store) AddTenant(ctx context.Context, tenant model.Tenant) (model.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenant.ID = s.nextID("t")
	s.data.Tenants = append(s.data.Tenants, tenant)
	for i := range s.data.Units {
		if s.data.Units[i].ID == tenant.UnitID {
			s.data.Units[i].Status = model.StatusOccupied
			break
		}
	}
	monitoring.RecordMutations.WithLabelValues("tenants", "add").Inc()
	return tenant, s.persist(ctx)
}

// DeleteTenant vacates the tenant's unit and removes the tenant. Unknown ids
// are a silent no-op.
func (s *Store) DeleteTenant(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tenant *model.Tenant
	for i := range s.data.Tenants {
		if s.data.Tenants[i].ID == id {
			tenant = &s.data.Tenants[i]
			break
		}
	}
	if tenant == nil {
		return nil
	}

	for i := range s.data.Units {
		if s.data.Units[i].ID == tenant.UnitID {
			s.data.Units[i].Status = model.StatusVacant
			break
		}
	}
	kept := s.data.Tenants[:0]
	for _, t := range s.data.Tenants {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.data.Tenants = kept
	monitoring.RecordMutations.WithLabelValues("tenants", "delete").Inc()
	return s.persist(ctx)
}

// Tenants returns all tenants.
func (s *Store) Tenants() []model.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Tenant(nil), s.data.Tenants...)
}

// AddPayment records a rent payment as entered; the amount is not validated
// against the tenant's rent.
func (s *Store) AddPayment(ctx context.Context, payment model.RentPayment) (model.RentPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment.ID = s.nextID("p")
	s.data.Payments = append(s.data.Payments, payment)
	monitoring.RecordMutations.WithLabelValues("payments", "add").Inc()
	return payment, s.persist(ctx)
}

// Payments returns all rent payments.
func (s *Store) Payments() []model.RentPayment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.RentPayment(nil), s.data.Payments...)
}

// AddExpense assigns a fresh id, appends and persists.
func (s *Store) AddExpense(ctx context.Context, expense model.Expense) (model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense.ID = s.nextID("e")
	s.data.Expenses = append(s.data.Expenses, expense)
	monitoring.RecordMutations.WithLabelValues("expenses", "add").Inc()
	return expense, s.persist(ctx)
}

// Expenses returns expenses, optionally filtered by building ("" returns all).
func (s *Store) Expenses(buildingID string) []model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	if buildingID == "" {
		return append([]model.Expense(nil), s.data.Expenses...)
	}
	var out []model.Expense
	for _, e := range s.data.Expenses {
		if e.BuildingID == buildingID {
			out = append(out, e)
		}
	}
	return out
}

// Reports returns all monthly reports.
func (s *Store) Reports() []model.MonthlyReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.MonthlyReport(nil), s.data.Reports...)
}
