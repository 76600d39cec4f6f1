package domain

import (
	"errors"
	"time"
)

// ShopStatus is the occupancy state of a shop. The value is stored as-is;
// no transition rules apply.
type ShopStatus string

const (
	ShopOccupied    ShopStatus = "occupied"
	ShopVacant      ShopStatus = "vacant"
	ShopMaintenance ShopStatus = "maintenance"
	ShopReserved    ShopStatus = "reserved"
)

var ErrShopNotFound = errors.New("shop not found")
var ErrShopExists = errors.New("shop number already exists")
var ErrInvalidStatus = errors.New("invalid shop status")

var ErrForbidden = errors.New("access forbidden")

// ValidShopStatus reports whether s is a known shop status.
func ValidShopStatus(s ShopStatus) bool {
	switch s {
	case ShopOccupied, ShopVacant, ShopMaintenance, ShopReserved:
		return true
	}
	return false
}

// Shop is a rental property record. CreatedBy/UpdatedBy are audit
// references to the user who wrote the record.
type Shop struct {
	ID                   string     `json:"id"`
	ShopNumber           string     `json:"shop_number"`
	Name                 string     `json:"name"`
	Location             string     `json:"location"`
	Area                 float64    `json:"area,omitempty"`
	RentAmount           float64    `json:"rent_amount"`
	SecurityDeposit      float64    `json:"security_deposit,omitempty"`
	TenantName           string     `json:"tenant_name"`
	TenantContact        string     `json:"tenant_contact"`
	LeaseStartDate       time.Time  `json:"lease_start_date"`
	LeaseEndDate         *time.Time `json:"lease_end_date,omitempty"`
	RentDueDay           int        `json:"rent_due_day"`
	Status               ShopStatus `json:"status"`
	Notes                string     `json:"notes,omitempty"`
	IncludeInWaterBill   bool       `json:"include_in_water_bill"`
	IncludeInCurrentBill bool       `json:"include_in_current_bill"`
	WaterBillShare       float64    `json:"water_bill_share"`
	CurrentBillShare     float64    `json:"current_bill_share"`
	CreatedBy            string     `json:"created_by"`
	UpdatedBy            string     `json:"updated_by,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
