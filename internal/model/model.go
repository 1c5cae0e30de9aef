package model

// UnitType classifies a rentable unit.
type UnitType string

const (
	UnitSingleRoom    UnitType = "Single Room"
	UnitDoubleRoom    UnitType = "Double Room"
	UnitBedsitter     UnitType = "Bedsitter"
	UnitOneBedroom    UnitType = "1 Bedroom"
	UnitTwoBedrooms   UnitType = "2 Bedrooms"
	UnitThreeBedrooms UnitType = "3 Bedrooms"
	UnitGated         UnitType = "Gated"
)

// OccupancyStatus tracks whether a unit is rentable right now.
type OccupancyStatus string

const (
	StatusOccupied    OccupancyStatus = "Occupied"
	StatusVacant      OccupancyStatus = "Vacant"
	StatusMaintenance OccupancyStatus = "Maintenance"
)

// PaymentStatus records how a rent payment was settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentPartial PaymentStatus = "Partial"
	PaymentOverdue PaymentStatus = "Overdue"
)

// ExpenseType classifies a building expense.
type ExpenseType string

const (
	ExpenseElectricity ExpenseType = "Electricity"
	ExpenseWater       ExpenseType = "Water"
	ExpenseRepairs     ExpenseType = "Repairs"
	ExpenseOther       ExpenseType = "Other"
)

// Owner is a landlord the manager collects rent on behalf of.
type Owner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PaymentInfo string `json:"paymentInfo"`
}

// Building belongs to exactly one owner and groups units, expenses and reports.
type Building struct {
	ID                   string  `json:"id"`
	OwnerID              string  `json:"ownerId"`
	Name                 string  `json:"name"`
	Address              string  `json:"address"`
	ManagementFeePercent float64 `json:"managementFeePercent"`
}

// Unit is a rentable space inside a building.
type Unit struct {
	ID          string          `json:"id"`
	BuildingID  string          `json:"buildingId"`
	UnitNumber  string          `json:"unitNumber"`
	UnitType    UnitType        `json:"unitType"`
	MonthlyRent float64         `json:"monthlyRent"`
	Status      OccupancyStatus `json:"status"`
}

// Tenant occupies exactly one unit for as long as the record exists.
type Tenant struct {
	ID         string  `json:"id"`
	UnitID     string  `json:"unitId"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	MoveInDate string  `json:"moveInDate"`
	RentAmount float64 `json:"rentAmount"`
	Deposit    float64 `json:"deposit"`
}

// RentPayment is recorded as entered; the amount is never validated against
// the tenant's rent.
type RentPayment struct {
	ID       string        `json:"id"`
	TenantID string        `json:"tenantId"`
	Amount   float64       `json:"amount"`
	Date     string        `json:"date"`
	Status   PaymentStatus `json:"status"`
	Month    string        `json:"month"`
}

// Expense is a cost charged against a building for a given month (YYYY-MM).
type Expense struct {
	ID          string      `json:"id"`
	BuildingID  string      `json:"buildingId"`
	Type        ExpenseType `json:"type"`
	Amount      float64     `json:"amount"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Month       string      `json:"month"`
}

// MonthlyReport is the owner payout summary for one building and month.
// At most one report exists per (BuildingID, Month); regenerating replaces it.
type MonthlyReport struct {
	ID                 string  `json:"id"`
	BuildingID         string  `json:"buildingId"`
	Month              string  `json:"month"`
	TotalRentCollected float64 `json:"totalRentCollected"`
	ManagementFee      float64 `json:"managementFee"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetPayout          float64 `json:"netPayout"`
	GeneratedDate      string  `json:"generatedDate"`
}

// Identity is the signed-in display identity persisted next to the data
// snapshot.
type Identity struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
	Guest   bool   `json:"isGuest"`
}
