package ports

import (
	"context"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

// ShopRepository defines the interface for shop persistence.
type ShopRepository interface {
	Insert(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
	FindByID(ctx context.Context, id string) (*domain.Shop, error)
	FindByShopNumber(ctx context.Context, shopNumber string) (*domain.Shop, error)
	List(ctx context.Context) ([]*domain.Shop, error)
	Update(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
}
