package postgres

import (
	"context"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByBuyer returns the buyer's orders newest-first, each with its lines
// and their current products. Lines whose listing was deleted keep a nil
// product.
func (repo *orderRepository) FindByBuyer(ctx context.Context, buyerID string) ([]entity.OrderWithItems, error) {
	var orderModels []model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	orders := make([]entity.OrderWithItems, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, *toOrderWithItemsDomain(&orderModels[i]))
	}

	return orders, nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.OrderWithItems, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Items.Product").
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderWithItemsDomain(&orderM), nil
}

// Create inserts the header, then the lines stamped with the generated order
// id. Generated ids and timestamps are filled back into the arguments. Stock
// bookkeeping is not done here; the caller runs this inside a transaction
// together with the per-line stock decrements.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	if len(items) == 0 {
		return nil
	}

	itemModels := make([]model.OrderItemModel, 0, len(items))
	for i := range items {
		items[i].OrderID = orderM.ID
		itemModels = append(itemModels, *fromOrderItemDomain(&items[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i := range itemModels {
		items[i].ID = itemModels[i].ID
	}

	return nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load updated order")
	}

	return toOrderDomain(&orderM), nil
}

// --- Mapper functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		Status:          entity.OrderStatus(data.Status),
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		ShippingCity:    data.ShippingCity,
		ShippingPhone:   data.ShippingPhone,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		SellerID:  data.SellerID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		Status:    entity.OrderStatus(data.Status),
	}
}

func toOrderWithItemsDomain(data *model.OrderModel) *entity.OrderWithItems {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItemWithProduct, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, entity.OrderItemWithProduct{
			OrderItem: *toOrderItemDomain(&data.Items[i]),
			Product:   toProductDomain(data.Items[i].Product),
		})
	}

	return &entity.OrderWithItems{
		Order: *toOrderDomain(data),
		Items: items,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		Status:          string(data.Status),
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		ShippingCity:    data.ShippingCity,
		ShippingPhone:   data.ShippingPhone,
		Notes:           data.Notes,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		SellerID:  data.SellerID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		Status:    string(data.Status),
	}
}
