package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
	"github.com/apexneural-PraveenJogi/razorpay/app/factory"
	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
)

const defaultListLimit = int32(100)

type orderGateway interface {
	CreateOrder(ctx context.Context, req *razorpay.CreateOrderRequest) (*razorpay.Order, error)
	FetchOrder(ctx context.Context, orderID string) (*razorpay.Order, error)
}

type orderRepository interface {
	Upsert(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, limit, offset int32) ([]*entity.Order, error)
}

type OrderService struct {
	gateway   orderGateway
	orderRepo orderRepository
	logger    logrus.FieldLogger
}

func NewOrderService(gateway orderGateway, orderRepo orderRepository) *OrderService {
	return &OrderService{
		gateway:   gateway,
		orderRepo: orderRepo,
		logger:    factory.NewModuleLogger("orders-service"),
	}
}

type CreateOrderInput struct {
	// Amount is in minor currency units; conversion from major units happens
	// at the request boundary.
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*razorpay.Order, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidRequest
	}

	receipt := strings.TrimSpace(input.Receipt)
	if receipt == "" {
		receipt = "rcpt_" + uuid.NewString()
	}

	remote, err := s.gateway.CreateOrder(ctx, &razorpay.CreateOrderRequest{
		Amount:   input.Amount,
		Currency: strings.ToUpper(defaultString(strings.TrimSpace(input.Currency), "INR")),
		Receipt:  receipt,
		Notes:    input.Notes,
	})
	if err != nil {
		return nil, err
	}

	// The order exists remotely at this point; a mirror failure must not undo
	// that, so it is logged and the remote order is still returned.
	now := time.Now().UTC()
	if err := s.orderRepo.Upsert(ctx, orderFromRemote(remote, now)); err != nil {
		s.logger.WithError(err).WithField("order_id", remote.ID).Warn("Failed to mirror order")
	}

	return remote, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*razorpay.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidRequest
	}
	return s.gateway.FetchOrder(ctx, orderID)
}

func (s *OrderService) GetOrderFromDB(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *OrderService) ListOrdersFromDB(ctx context.Context, limit, offset int32) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.orderRepo.List(ctx, limit, offset)
}
