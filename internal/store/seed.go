package store

import (
	"github.com/proptrack-io/property-management-service/internal/model"
)

// seedData is the demo dataset a fresh install starts from.
func seedData() collections {
	return collections{
		Owners: []model.Owner{
			{ID: "o1", Name: "John Smith", Email: "john@example.com", Phone: "555-0101", PaymentInfo: "Chase Bank ..."},
			{ID: "o2", Name: "Sarah Wilson", Email: "sarah@example.com", Phone: "555-0102", PaymentInfo: "BofA ..."},
		},
		Buildings: []model.Building{
			{ID: "b1", OwnerID: "o1", Name: "Skyline Apartments", Address: "123 View St", ManagementFeePercent: 10},
			{ID: "b2", OwnerID: "o1", Name: "Green Garden", Address: "456 Bloom Ave", ManagementFeePercent: 10},
			{ID: "b3", OwnerID: "o2", Name: "The Heights", Address: "789 Summit Rd", ManagementFeePercent: 10},
		},
		Units: []model.Unit{
			{ID: "u1", BuildingID: "b1", UnitNumber: "101", UnitType: model.UnitTwoBedrooms, MonthlyRent: 1200, Status: model.StatusOccupied},
			{ID: "u2", BuildingID: "b1", UnitNumber: "102", UnitType: model.UnitOneBedroom, MonthlyRent: 850, Status: model.StatusOccupied},
			{ID: "u3", BuildingID: "b1", UnitNumber: "103", UnitType: model.UnitBedsitter, MonthlyRent: 500, Status: model.StatusVacant},
			{ID: "u4", BuildingID: "b2", UnitNumber: "A1", UnitType: model.UnitThreeBedrooms, MonthlyRent: 1800, Status: model.StatusOccupied},
			{ID: "u5", BuildingID: "b3", UnitNumber: "PH-1", UnitType: model.UnitGated, MonthlyRent: 3500, Status: model.StatusOccupied},
		},
		Tenants: []model.Tenant{
			{ID: "t1", UnitID: "u1", Name: "Alice Johnson", Email: "alice@test.com", Phone: "555-1234", MoveInDate: "2023-01-15", RentAmount: 1200, Deposit: 1200},
			{ID: "t2", UnitID: "u2", Name: "Bob Roberts", Email: "bob@test.com", Phone: "555-5678", MoveInDate: "2023-03-01", RentAmount: 850, Deposit: 850},
			{ID: "t3", UnitID: "u4", Name: "Charlie Davis", Email: "charlie@test.com", Phone: "555-9012", MoveInDate: "2022-11-20", RentAmount: 1800, Deposit: 1800},
			{ID: "t4", UnitID: "u5", Name: "Eve Evans", Email: "eve@test.com", Phone: "555-3456", MoveInDate: "2023-06-10", RentAmount: 3500, Deposit: 3500},
		},
	}
}
