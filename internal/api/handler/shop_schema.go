package handler

import (
	"time"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
	"github.com/vstdesk/rental-expense-manager/internal/core/ports"
)

type shopRequest struct {
	ShopNumber           string     `json:"shop_number"    validate:"required"`
	Name                 string     `json:"name"           validate:"required"`
	Location             string     `json:"location"       validate:"required"`
	Area                 float64    `json:"area"           validate:"omitempty,gt=0"`
	RentAmount           float64    `json:"rent_amount"    validate:"required,gt=0"`
	SecurityDeposit      float64    `json:"security_deposit" validate:"omitempty,gte=0"`
	TenantName           string     `json:"tenant_name"    validate:"required"`
	TenantContact        string     `json:"tenant_contact" validate:"required"`
	LeaseStartDate       time.Time  `json:"lease_start_date" validate:"required"`
	LeaseEndDate         *time.Time `json:"lease_end_date"`
	RentDueDay           int        `json:"rent_due_day"   validate:"omitempty,gte=1,lte=31"`
	Status               string     `json:"status"         validate:"omitempty,oneof=occupied vacant maintenance reserved"`
	Notes                string     `json:"notes"`
	IncludeInWaterBill   bool       `json:"include_in_water_bill"`
	IncludeInCurrentBill bool       `json:"include_in_current_bill"`
	WaterBillShare       float64    `json:"water_bill_share"   validate:"gte=0,lte=100"`
	CurrentBillShare     float64    `json:"current_bill_share" validate:"gte=0,lte=100"`
}

type updateShopStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=occupied vacant maintenance reserved"`
}

type shopResponse struct {
	Message string       `json:"message,omitempty"`
	Data    *domain.Shop `json:"data"`
}

type shopListResponse struct {
	Count int            `json:"count"`
	Data  []*domain.Shop `json:"data"`
}

func toShopInput(req shopRequest) ports.ShopInput {
	rentDueDay := req.RentDueDay
	if rentDueDay == 0 {
		rentDueDay = 1
	}
	return ports.ShopInput{
		ShopNumber:           req.ShopNumber,
		Name:                 req.Name,
		Location:             req.Location,
		Area:                 req.Area,
		RentAmount:           req.RentAmount,
		SecurityDeposit:      req.SecurityDeposit,
		TenantName:           req.TenantName,
		TenantContact:        req.TenantContact,
		LeaseStartDate:       req.LeaseStartDate,
		LeaseEndDate:         req.LeaseEndDate,
		RentDueDay:           rentDueDay,
		Status:               domain.ShopStatus(req.Status),
		Notes:                req.Notes,
		IncludeInWaterBill:   req.IncludeInWaterBill,
		IncludeInCurrentBill: req.IncludeInCurrentBill,
		WaterBillShare:       req.WaterBillShare,
		CurrentBillShare:     req.CurrentBillShare,
	}
}
