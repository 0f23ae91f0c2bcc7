package impl

import (
	"io"
	"log/slog"
	"time"

	"prelovin/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type productFixture struct {
	id        int64
	sellerID  string
	name      string
	desc      string
	price     string
	condition entity.Condition
	stock     int
	views     int
	createdAt time.Time
}

func (f productFixture) build() entity.ProductWithSeller {
	condition := f.condition
	if condition == "" {
		condition = entity.ConditionBagus
	}
	sellerID := f.sellerID
	if sellerID == "" {
		sellerID = "seller-1"
	}

	return entity.ProductWithSeller{
		Product: entity.Product{
			ID:          f.id,
			SellerID:    sellerID,
			Name:        f.name,
			Description: f.desc,
			Price:       decimal.RequireFromString(f.price),
			Condition:   condition,
			Stock:       f.stock,
			IsActive:    true,
			Views:       f.views,
			CreatedAt:   f.createdAt,
		},
		Seller: &entity.User{ID: sellerID, FirstName: "Seller"},
	}
}
