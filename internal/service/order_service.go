package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/pricing"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/pubsub"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/qrcode"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/ws"
	"github.com/Vicky-coder616/dealdish-backend/internal/repository"
)

var (
	ErrOrderNotFound     = errors.New("order does not exist")
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// validTransitions is the order lifecycle: forward one step at a time,
// cancel from any non-terminal state.
var validTransitions = map[string][]string{
	model.OrderStatusPending:   {model.OrderStatusConfirmed, model.OrderStatusCancelled},
	model.OrderStatusConfirmed: {model.OrderStatusReady, model.OrderStatusCancelled},
	model.OrderStatusReady:     {model.OrderStatusCompleted, model.OrderStatusCancelled},
}

type OrderService struct {
	orderRepo      *repository.OrderRepository
	restaurantRepo *repository.RestaurantRepository
	publisher      *pubsub.Publisher // optional, multi-instance fan-out
	hub            *ws.Hub           // optional, direct delivery
	qrGenerator    qrcode.Generator
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	restaurantRepo *repository.RestaurantRepository,
	publisher *pubsub.Publisher,
	hub *ws.Hub,
	qrGenerator qrcode.Generator,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		publisher:      publisher,
		hub:            hub,
		qrGenerator:    qrGenerator,
	}
}

// Create places an order. The restaurant's commission rate is snapshotted
// onto the order so later rate changes never touch past orders.
func (s *OrderService) Create(ctx context.Context, req *dto.OrderCreateRequest) (*model.Order, error) {
	restaurant, err := s.restaurantRepo.GetByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	order := &model.Order{
		CustomerID:       req.CustomerID,
		RestaurantID:     req.RestaurantID,
		Items:            req.Items,
		TotalAmount:      req.TotalAmount,
		CommissionRate:   restaurant.CommissionRate,
		CommissionAmount: pricing.CommissionAmount(req.TotalAmount, restaurant.CommissionRate),
		Status:           model.OrderStatusPending,
		QRCode:           uuid.NewString(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.notify(ctx, order)
	return order, nil
}

// Get returns a single order.
func (s *OrderService) Get(id int64) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// AdvanceStatus moves an order through its lifecycle. Completing an order
// also accumulates the restaurant's commission counters atomically.
func (s *OrderService) AdvanceStatus(ctx context.Context, id int64, newStatus string) (*model.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, newStatus)
	}

	if err := s.orderRepo.Transition(order, newStatus); err != nil {
		return nil, err
	}

	s.notify(ctx, order)
	return order, nil
}

// QRCodePNG renders the order's pickup token as a PNG.
func (s *OrderService) QRCodePNG(id int64) ([]byte, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.qrGenerator.Generate(order.QRCode)
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// notify pushes the order's current state to the customer: through redis
// when a publisher is configured (other instances deliver it), otherwise
// straight to the local hub. Failures are logged, never surfaced.
func (s *OrderService) notify(ctx context.Context, order *model.Order) {
	event := &pubsub.OrderEvent{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		PickupToken:  order.QRCode,
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("order event publish failed for order %d: %v", order.ID, err)
		}
		return
	}

	if s.hub != nil {
		_ = s.hub.SendToUser(order.CustomerID, &ws.OrderUpdate{
			Type:         "order_update",
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Status:       order.Status,
			PickupToken:  order.QRCode,
		})
	}
}
