package repository

import (
	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) GetByID(id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Transition updates the order's status and, when the transition completes
// the order, accumulates the restaurant's commission counters in the same
// transaction.
func (r *OrderRepository) Transition(order *model.Order, newStatus string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).
			Update("status", newStatus).Error; err != nil {
			return err
		}

		if newStatus == model.OrderStatusCompleted {
			err := tx.Model(&model.Restaurant{}).Where("id = ?", order.RestaurantID).
				Updates(map[string]interface{}{
					"total_commission_paid": gorm.Expr("total_commission_paid + ?", order.CommissionAmount),
					"orders_count":          gorm.Expr("orders_count + 1"),
				}).Error
			if err != nil {
				return err
			}
		}

		order.Status = newStatus
		return nil
	})
}
