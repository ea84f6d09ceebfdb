package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"catering-service/internal/domain"
	rabbit "catering-service/internal/infra/rabbitmq"
	"catering-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrOrderNotFound = errors.New("order not found")

const (
	ordersCacheKey = "orders:all"
	ordersCacheTTL = 10 * time.Second
)

// OrderService owns the order lifecycle: intake, edits, the kitchen
// workflow and the events other services consume.
type OrderService struct {
	repo        repository.OrderRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
	log         *zap.Logger
}

func NewOrderService(r repository.OrderRepository, pub rabbit.PublisherInterface, log *zap.Logger) *OrderService {
	return &OrderService{
		repo:      r,
		publisher: pub,
		log:       log,
	}
}

func (u *OrderService) SetRedisClient(client *redis.Client) {
	u.redisClient = client
}

// CreateOrder normalizes, validates and persists a new order, then emits
// order.created. The order ID is assigned here when the caller did not
// provide one.
func (u *OrderService) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}
	order.Normalize()
	if err := order.Validate(); err != nil {
		return err
	}

	if err := u.repo.Save(order); err != nil {
		return err
	}

	u.invalidateListCache(ctx)
	go u.publishEvent(context.Background(), domain.EventOrderCreated, order)

	return nil
}

func (u *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// ListOrders returns every order, newest first, through a short-lived
// cache so the dashboard's polling does not hammer the database.
func (u *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if u.redisClient != nil {
		cached, err := u.redisClient.Get(ctx, ordersCacheKey).Result()
		if err == nil {
			var orders []domain.Order
			if err := json.Unmarshal([]byte(cached), &orders); err == nil {
				return orders, nil
			}
		}
	}

	orders, err := u.repo.FindAll()
	if err != nil {
		return nil, err
	}

	if u.redisClient != nil {
		if data, err := json.Marshal(orders); err == nil {
			u.redisClient.Set(ctx, ordersCacheKey, data, ordersCacheTTL)
		}
	}
	return orders, nil
}

func (u *OrderService) ListOrdersByDate(ctx context.Context, date string) ([]domain.Order, error) {
	return u.repo.FindByDate(date)
}

// UpdateOrder replaces an existing order's fields after re-running the
// intake normalization, so a changed advance payment recomputes balance.
func (u *OrderService) UpdateOrder(ctx context.Context, order *domain.Order) error {
	order.Normalize()
	if err := order.Validate(); err != nil {
		return err
	}

	if err := u.repo.Update(order); err != nil {
		if isNotFound(err) {
			return ErrOrderNotFound
		}
		return err
	}
	u.invalidateListCache(ctx)
	return nil
}

func (u *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := u.repo.Delete(id); err != nil {
		if isNotFound(err) {
			return ErrOrderNotFound
		}
		return err
	}
	u.invalidateListCache(ctx)
	return nil
}

// UpdateCookStatus moves an order through the kitchen workflow. Any
// transition is allowed, including backwards, so the receptionist can
// correct a mistaken tap.
func (u *OrderService) UpdateCookStatus(ctx context.Context, id string, status domain.CookStatus) (*domain.Order, error) {
	probe := domain.Order{CookStatus: status, PaymentType: domain.PaymentCash, PaymentStatus: domain.PaymentUnpaid}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	o, err := u.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	o.CookStatus = status
	if err := u.repo.Update(o); err != nil {
		return nil, err
	}

	u.invalidateListCache(ctx)
	go u.publishEvent(context.Background(), domain.EventCookStatusChanged, o)
	return o, nil
}

// ShareToCook flags the order as visible on the kitchen display and
// notifies the display via the event bus. Sharing twice is a no-op.
func (u *OrderService) ShareToCook(ctx context.Context, id string) (*domain.Order, error) {
	o, err := u.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.SharedToCook {
		return o, nil
	}

	o.SharedToCook = true
	if err := u.repo.Update(o); err != nil {
		return nil, err
	}

	u.invalidateListCache(ctx)
	go u.publishEvent(context.Background(), domain.EventSharedToCook, o)
	return o, nil
}

func (u *OrderService) publishEvent(ctx context.Context, routingKey string, o *domain.Order) {
	if u.publisher == nil {
		return
	}
	evt := domain.OrderEvent{
		OrderID:    o.OrderID,
		ReceiptNo:  o.ReceiptNo,
		Name:       o.Name,
		CookStatus: o.CookStatus,
		OccurredAt: time.Now(),
	}
	if err := u.publisher.Publish(ctx, routingKey, evt); err != nil {
		u.log.Error("failed to publish event",
			zap.String("routingKey", routingKey),
			zap.String("orderId", o.OrderID),
			zap.Error(err))
	}
}

func (u *OrderService) invalidateListCache(ctx context.Context) {
	if u.redisClient == nil {
		return
	}
	if err := u.redisClient.Del(ctx, ordersCacheKey).Err(); err != nil {
		u.log.Warn("failed to invalidate orders cache", zap.Error(err))
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
