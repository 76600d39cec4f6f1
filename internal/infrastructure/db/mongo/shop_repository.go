package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

const shopsCollection = "shops"

type ShopRepository struct {
	coll *mongo.Collection
}

func NewShopRepository(db *mongo.Database) *ShopRepository {
	return &ShopRepository{coll: db.Collection(shopsCollection)}
}

type mongoShop struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	ShopNumber           string             `bson:"shop_number"`
	Name                 string             `bson:"name"`
	Location             string             `bson:"location"`
	Area                 float64            `bson:"area,omitempty"`
	RentAmount           float64            `bson:"rent_amount"`
	SecurityDeposit      float64            `bson:"security_deposit,omitempty"`
	TenantName           string             `bson:"tenant_name"`
	TenantContact        string             `bson:"tenant_contact"`
	LeaseStartDate       time.Time          `bson:"lease_start_date"`
	LeaseEndDate         *time.Time         `bson:"lease_end_date,omitempty"`
	RentDueDay           int                `bson:"rent_due_day"`
	Status               string             `bson:"status"`
	Notes                string             `bson:"notes,omitempty"`
	IncludeInWaterBill   bool               `bson:"include_in_water_bill"`
	IncludeInCurrentBill bool               `bson:"include_in_current_bill"`
	WaterBillShare       float64            `bson:"water_bill_share"`
	CurrentBillShare     float64            `bson:"current_bill_share"`
	CreatedBy            string             `bson:"created_by"`
	UpdatedBy            string             `bson:"updated_by,omitempty"`
	CreatedAt            time.Time          `bson:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at"`
}

func toMongoShop(s *domain.Shop) mongoShop {
	return mongoShop{
		ShopNumber:           s.ShopNumber,
		Name:                 s.Name,
		Location:             s.Location,
		Area:                 s.Area,
		RentAmount:           s.RentAmount,
		SecurityDeposit:      s.SecurityDeposit,
		TenantName:           s.TenantName,
		TenantContact:        s.TenantContact,
		LeaseStartDate:       s.LeaseStartDate,
		LeaseEndDate:         s.LeaseEndDate,
		RentDueDay:           s.RentDueDay,
		Status:               string(s.Status),
		Notes:                s.Notes,
		IncludeInWaterBill:   s.IncludeInWaterBill,
		IncludeInCurrentBill: s.IncludeInCurrentBill,
		WaterBillShare:       s.WaterBillShare,
		CurrentBillShare:     s.CurrentBillShare,
		CreatedBy:            s.CreatedBy,
		UpdatedBy:            s.UpdatedBy,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m mongoShop) toDomain() *domain.Shop {
	return &domain.Shop{
		ID:                   m.ID.Hex(),
		ShopNumber:           m.ShopNumber,
		Name:                 m.Name,
		Location:             m.Location,
		Area:                 m.Area,
		RentAmount:           m.RentAmount,
		SecurityDeposit:      m.SecurityDeposit,
		TenantName:           m.TenantName,
		TenantContact:        m.TenantContact,
		LeaseStartDate:       m.LeaseStartDate.UTC(),
		LeaseEndDate:         m.LeaseEndDate,
		RentDueDay:           m.RentDueDay,
		Status:               domain.ShopStatus(m.Status),
		Notes:                m.Notes,
		IncludeInWaterBill:   m.IncludeInWaterBill,
		IncludeInCurrentBill: m.IncludeInCurrentBill,
		WaterBillShare:       m.WaterBillShare,
		CurrentBillShare:     m.CurrentBillShare,
		CreatedBy:            m.CreatedBy,
		UpdatedBy:            m.UpdatedBy,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
	}
}

func (r *ShopRepository) Insert(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	res, err := r.coll.InsertOne(ctx, toMongoShop(shop))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrShopExists
		}
		return nil, fmt.Errorf("insert shop: %w", err)
	}

	created := *shop
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ShopRepository) FindByID(ctx context.Context, id string) (*domain.Shop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrShopNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ShopRepository) FindByShopNumber(ctx context.Context, shopNumber string) (*domain.Shop, error) {
	return r.findOne(ctx, bson.M{"shop_number": shopNumber})
}

func (r *ShopRepository) List(ctx context.Context) ([]*domain.Shop, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "shop_number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer cur.Close(ctx)

	shops := []*domain.Shop{}
	for cur.Next(ctx) {
		var ms mongoShop
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode shop: %w", err)
		}
		shops = append(shops, ms.toDomain())
	}
	return shops, cur.Err()
}

func (r *ShopRepository) Update(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	oid, err := primitive.ObjectIDFromHex(shop.ID)
	if err != nil {
		return nil, domain.ErrShopNotFound
	}

	ms := toMongoShop(shop)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, ms)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrShopExists
		}
		return nil, fmt.Errorf("update shop: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrShopNotFound
	}
	return shop, nil
}

// EnsureIndexes creates the unique shop_number index plus the secondary
// lookup indexes carried over from the relational schema.
func (r *ShopRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "shop_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenant_name", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ShopRepository) findOne(ctx context.Context, filter bson.M) (*domain.Shop, error) {
	var ms mongoShop
	if err := r.coll.FindOne(ctx, filter).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf("find shop: %w", err)
	}
	return ms.toDomain(), nil
}
