package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptrack-io/property-management-service/internal/model"
	"github.com/proptrack-io/property-management-service/internal/snapshot"
)

func setupTestStore(t *testing.T) (*Store, snapshot.Store) {
	snap := snapshot.NewMemory()
	s := New(snap)
	require.NoError(t, s.Load(context.Background()))
	return s, snap
}

func TestLoad_SeedsDemoDataOnce(t *testing.T) {
	s, snap := setupTestStore(t)
	ctx := context.Background()

	assert.Len(t, s.Owners(), 2)
	assert.Len(t, s.Buildings(), 3)
	assert.Len(t, s.Units(""), 5)
	assert.Len(t, s.Tenants(), 4)

	_, err := s.AddOwner(ctx, model.Owner{Name: "New Owner"})
	require.NoError(t, err)

	// A second store over the same snapshot must see the mutation, not a
	// fresh seed.
	reloaded := New(snap)
	require.NoError(t, reloaded.Load(ctx))
	assert.Len(t, reloaded.Owners(), 3)
}

func TestAddOwner_AssignsDistinctIDs(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		owner, err := s.AddOwner(ctx, model.Owner{Name: "Owner"})
		require.NoError(t, err)
		assert.Regexp(t, `^o\d+$`, owner.ID)
		assert.False(t, seen[owner.ID], "duplicate id %s", owner.ID)
		seen[owner.ID] = true
	}
}

func TestDeleteOwner_GuardedByBuildings(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	err := s.DeleteOwner(ctx, "o1")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Cannot delete owner with active buildings.", conflict.Error())
	assert.Len(t, s.Owners(), 2)

	owner, err := s.AddOwner(ctx, model.Owner{Name: "Unattached"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteOwner(ctx, owner.ID))
	assert.Len(t, s.Owners(), 2)
}

func TestDeleteBuilding_GuardedByOccupants(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	err := s.DeleteBuilding(ctx, "b1")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Cannot delete building with active tenants.", conflict.Error())
}

func TestDeleteBuilding_CascadesAfterTenantsLeave(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	_, err := s.AddExpense(ctx, model.Expense{BuildingID: "b1", Type: model.ExpenseRepairs, Amount: 150, Month: "2024-01"})
	require.NoError(t, err)
	_, err = s.GenerateMonthlyReport(ctx, "b1", "2024-01")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTenant(ctx, "t1"))
	require.NoError(t, s.DeleteTenant(ctx, "t2"))
	require.NoError(t, s.DeleteBuilding(ctx, "b1"))

	assert.Len(t, s.Buildings(), 2)
	assert.Empty(t, s.Units("b1"))
	assert.Empty(t, s.Expenses("b1"))
	for _, r := range s.Reports() {
		assert.NotEqual(t, "b1", r.BuildingID)
	}
}

func TestTenantLifecycle_DrivesUnitStatus(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	// u3 is seeded vacant.
	tenant, err := s.AddTenant(ctx, model.Tenant{UnitID: "u3", Name: "New Tenant", RentAmount: 500})
	require.NoError(t, err)

	assert.Equal(t, model.StatusOccupied, unitStatus(t, s, "u3"))

	require.NoError(t, s.DeleteTenant(ctx, tenant.ID))
	assert.Equal(t, model.StatusVacant, unitStatus(t, s, "u3"))
	for _, tn := range s.Tenants() {
		assert.NotEqual(t, tenant.ID, tn.ID)
	}
}

func TestDeleteTenant_UnknownIDIsNoOp(t *testing.T) {
	s, _ := setupTestStore(t)

	require.NoError(t, s.DeleteTenant(context.Background(), "t-missing"))
	assert.Len(t, s.Tenants(), 4)
}

func TestUpdateUnitStatus_UnknownIDIsNoOp(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateUnitStatus(ctx, "u-missing", model.StatusMaintenance))

	require.NoError(t, s.UpdateUnitStatus(ctx, "u3", model.StatusMaintenance))
	assert.Equal(t, model.StatusMaintenance, unitStatus(t, s, "u3"))
}

func TestUnitAndExpenseFilters(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	_, err := s.AddExpense(ctx, model.Expense{BuildingID: "b1", Type: model.ExpenseWater, Amount: 40, Month: "2024-02"})
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, model.Expense{BuildingID: "b2", Type: model.ExpenseWater, Amount: 55, Month: "2024-02"})
	require.NoError(t, err)

	assert.Len(t, s.Units("b1"), 3)
	assert.Len(t, s.Units(""), 5)
	assert.Len(t, s.Expenses("b1"), 1)
	assert.Len(t, s.Expenses(""), 2)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, snap := setupTestStore(t)
	ctx := context.Background()

	_, err := s.AddPayment(ctx, model.RentPayment{TenantID: "t1", Amount: 1200, Month: "2024-01", Status: model.PaymentPaid})
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, model.Expense{BuildingID: "b1", Type: model.ExpenseElectricity, Amount: 90, Month: "2024-01"})
	require.NoError(t, err)
	_, err = s.GenerateMonthlyReport(ctx, "b1", "2024-01")
	require.NoError(t, err)

	reloaded := New(snap)
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, s.Owners(), reloaded.Owners())
	assert.Equal(t, s.Buildings(), reloaded.Buildings())
	assert.Equal(t, s.Units(""), reloaded.Units(""))
	assert.Equal(t, s.Tenants(), reloaded.Tenants())
	assert.Equal(t, s.Payments(), reloaded.Payments())
	assert.Equal(t, s.Expenses(""), reloaded.Expenses(""))
	assert.Equal(t, s.Reports(), reloaded.Reports())
}

func unitStatus(t *testing.T, s *Store, unitID string) model.OccupancyStatus {
	t.Helper()
	for _, u := range s.Units("") {
		if u.ID == unitID {
			return u.Status
		}
	}
	t.Fatalf("unit %s not found", unitID)
	return ""
}
