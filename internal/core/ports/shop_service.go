package ports

import (
	"context"
	"time"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

// ShopInput carries the writable business fields of a shop. It is used for
// both create and full update.
type ShopInput struct {
	ShopNumber           string
	Name                 string
	Location             string
	Area                 float64
	RentAmount           float64
	SecurityDeposit      float64
	TenantName           string
	TenantContact        string
	LeaseStartDate       time.Time
	LeaseEndDate         *time.Time
	RentDueDay           int
	Status               domain.ShopStatus
	Notes                string
	IncludeInWaterBill   bool
	IncludeInCurrentBill bool
	WaterBillShare       float64
	CurrentBillShare     float64
}

type ShopService interface {
	Create(ctx context.Context, in ShopInput, createdBy string) (*domain.Shop, error)
	Get(ctx context.Context, id string) (*domain.Shop, error)
	List(ctx context.Context) ([]*domain.Shop, error)
	Update(ctx context.Context, id string, in ShopInput, updatedBy string) (*domain.Shop, error)
	// UpdateStatus stores the new status value; transitions are not validated.
	UpdateStatus(ctx context.Context, id string, status domain.ShopStatus, updatedBy string) (*domain.Shop, error)
}
