package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
	"github.com/vstdesk/rental-expense-manager/internal/core/ports"
)

// ShopService implements shop CRUD with audit stamping.
type ShopService struct {
	repo ports.ShopRepository
	log  zerolog.Logger
}

func NewShopService(repo ports.ShopRepository, log zerolog.Logger) *ShopService {
	return &ShopService{repo: repo, log: log}
}

func (s *ShopService) Create(ctx context.Context, in ports.ShopInput, createdBy string) (*domain.Shop, error) {
	if err := s.checkShopNumberFree(ctx, in.ShopNumber, ""); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.ShopOccupied
	}
	if !domain.ValidShopStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	shop := &domain.Shop{
		ShopNumber:           in.ShopNumber,
		Name:                 in.Name,
		Location:             in.Location,
		Area:                 in.Area,
		RentAmount:           in.RentAmount,
		SecurityDeposit:      in.SecurityDeposit,
		TenantName:           in.TenantName,
		TenantContact:        in.TenantContact,
		LeaseStartDate:       in.LeaseStartDate,
		LeaseEndDate:         in.LeaseEndDate,
		RentDueDay:           in.RentDueDay,
		Status:               status,
		Notes:                in.Notes,
		IncludeInWaterBill:   in.IncludeInWaterBill,
		IncludeInCurrentBill: in.IncludeInCurrentBill,
		WaterBillShare:       in.WaterBillShare,
		CurrentBillShare:     in.CurrentBillShare,
		CreatedBy:            createdBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.repo.Insert(ctx, shop)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("shop_number", created.ShopNumber).Str("created_by", createdBy).Msg("shop created")
	return created, nil
}

func (s *ShopService) Get(ctx context.Context, id string) (*domain.Shop, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ShopService) List(ctx context.Context) ([]*domain.Shop, error) {
	return s.repo.List(ctx)
}

func (s *ShopService) Update(ctx context.Context, id string, in ports.ShopInput, updatedBy string) (*domain.Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ShopNumber != shop.ShopNumber {
		if err := s.checkShopNumberFree(ctx, in.ShopNumber, shop.ID); err != nil {
			return nil, err
		}
	}
	status := in.Status
	if status == "" {
		status = shop.Status
	}
	if !domain.ValidShopStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	shop.ShopNumber = in.ShopNumber
	shop.Name = in.Name
	shop.Location = in.Location
	shop.Area = in.Area
	shop.RentAmount = in.RentAmount
	shop.SecurityDeposit = in.SecurityDeposit
	shop.TenantName = in.TenantName
	shop.TenantContact = in.TenantContact
	shop.LeaseStartDate = in.LeaseStartDate
	shop.LeaseEndDate = in.LeaseEndDate
	shop.RentDueDay = in.RentDueDay
	shop.Status = status
	shop.Notes = in.Notes
	shop.IncludeInWaterBill = in.IncludeInWaterBill
	shop.IncludeInCurrentBill = in.IncludeInCurrentBill
	shop.WaterBillShare = in.WaterBillShare
	shop.CurrentBillShare = in.CurrentBillShare
	shop.UpdatedBy = updatedBy
	shop.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, shop)
}

func (s *ShopService) UpdateStatus(ctx context.Context, id string, status domain.ShopStatus, updatedBy string) (*domain.Shop, error) {
	if !domain.ValidShopStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shop.Status = status
	shop.UpdatedBy = updatedBy
	shop.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, shop)
}

func (s *ShopService) checkShopNumberFree(ctx context.Context, shopNumber, selfID string) error {
	existing, err := s.repo.FindByShopNumber(ctx, shopNumber)
	if errors.Is(err, domain.ErrShopNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return domain.ErrShopExists
	}
	return nil
}
