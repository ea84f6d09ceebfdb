package services

import (
	"context"
	"errors"
	"testing"

	"catering-service/internal/domain"
	"catering-service/internal/mocks"
	"catering-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestOrderService(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) *OrderService {
	return NewOrderService(repo, pub, zap.NewNop())
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name        string
		order       *domain.Order
		setupMocks  func(*mocks.MockOrderRepository, *mocks.MockPublisher)
		expectedErr error
	}{
		{
			name:  "successful creation assigns id and defaults",
			order: &domain.Order{Name: "Salim", TotalPayment: "10.000", PaymentType: domain.PaymentCash, PaymentStatus: domain.PaymentUnpaid, CookStatus: domain.CookPending},
			setupMocks: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				repo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
				pub.On("Publish", mock.Anything, domain.EventOrderCreated, mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name:  "invalid payment type rejected before save",
			order: &domain.Order{Name: "Salim", PaymentType: "cheque"},
			setupMocks: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
			},
			expectedErr: domain.ErrInvalidPaymentType,
		},
		{
			name:  "repository failure surfaces",
			order: createMockOrder("", testReceiptNo),
			setupMocks: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				repo.On("Save", mock.AnythingOfType("*domain.Order")).Return(errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			pub := new(mocks.MockPublisher)
			tt.setupMocks(repo, pub)

			svc := newTestOrderService(repo, pub)
			err := svc.CreateOrder(context.Background(), tt.order)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrInvalidPaymentType) {
					assert.ErrorIs(t, err, domain.ErrInvalidPaymentType)
					repo.AssertNotCalled(t, "Save")
				}
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, tt.order.OrderID)
			assert.Equal(t, domain.CookPending, tt.order.CookStatus)
			repo.AssertExpectations(t)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("FindByID", testOrderID).Return(createMockOrder(testOrderID, testReceiptNo), nil)

		svc := newTestOrderService(repo, new(mocks.MockPublisher))
		o, err := svc.GetOrder(context.Background(), testOrderID)

		assert.NoError(t, err)
		assert.Equal(t, testReceiptNo, o.ReceiptNo)
	})

	t.Run("missing maps to not found", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("FindByID", "missing").Return(nil, nil)

		svc := newTestOrderService(repo, new(mocks.MockPublisher))
		_, err := svc.GetOrder(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	repo.On("FindAll").Return([]domain.Order{*createMockOrder(testOrderID, testReceiptNo)}, nil)

	svc := newTestOrderService(repo, new(mocks.MockPublisher))
	orders, err := svc.ListOrders(context.Background())

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Run("recomputes balance on update", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)

		o := createMockOrder(testOrderID, testReceiptNo)
		o.AdvancePayment = "9.000"

		svc := newTestOrderService(repo, new(mocks.MockPublisher))
		err := svc.UpdateOrder(context.Background(), o)

		assert.NoError(t, err)
		assert.Equal(t, "0.000", o.BalancePayment)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("Update", mock.AnythingOfType("*domain.Order")).Return(repository.ErrNotFound)

		svc := newTestOrderService(repo, new(mocks.MockPublisher))
		err := svc.UpdateOrder(context.Background(), createMockOrder("missing", ""))

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestOrderService_UpdateCookStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.CookStatus
		setupMocks  func(*mocks.MockOrderRepository, *mocks.MockPublisher)
		expectedErr error
	}{
		{
			name:   "forward transition",
			status: domain.CookReady,
			setupMocks: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				repo.On("FindByID", testOrderID).Return(createMockOrder(testOrderID, testReceiptNo), nil)
				repo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
				pub.On("Publish", mock.Anything, domain.EventCookStatusChanged, mock.Anything).Return(nil).Maybe()
			},
		},
		{
			// backwards moves are deliberate: the receptionist can undo a tap
			name:   "backward transition allowed",
			status: domain.CookPending,
			setupMocks: func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {
				o := createMockOrder(testOrderID, testReceiptNo)
				o.CookStatus = domain.CookDelivered
				repo.On("FindByID", testOrderID).Return(o, nil)
				repo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
				pub.On("Publish", mock.Anything, domain.EventCookStatusChanged, mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name:        "unknown status rejected",
			status:      "burnt",
			setupMocks:  func(repo *mocks.MockOrderRepository, pub *mocks.MockPublisher) {},
			expectedErr: domain.ErrInvalidCookStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			pub := new(mocks.MockPublisher)
			tt.setupMocks(repo, pub)

			svc := newTestOrderService(repo, pub)
			o, err := svc.UpdateCookStatus(context.Background(), testOrderID, tt.status)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				repo.AssertNotCalled(t, "Update")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.status, o.CookStatus)
			repo.AssertExpectations(t)
		})
	}
}

func TestOrderService_ShareToCook(t *testing.T) {
	t.Run("shares and flags", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		pub := new(mocks.MockPublisher)
		repo.On("FindByID", testOrderID).Return(createMockOrder(testOrderID, testReceiptNo), nil)
		repo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
		pub.On("Publish", mock.Anything, domain.EventSharedToCook, mock.Anything).Return(nil).Maybe()

		svc := newTestOrderService(repo, pub)
		o, err := svc.ShareToCook(context.Background(), testOrderID)

		assert.NoError(t, err)
		assert.True(t, o.SharedToCook)
	})

	t.Run("sharing twice is a no-op", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		shared := createMockOrder(testOrderID, testReceiptNo)
		shared.SharedToCook = true
		repo.On("FindByID", testOrderID).Return(shared, nil)

		svc := newTestOrderService(repo, new(mocks.MockPublisher))
		o, err := svc.ShareToCook(context.Background(), testOrderID)

		assert.NoError(t, err)
		assert.True(t, o.SharedToCook)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	repo.On("Delete", testOrderID).Return(repository.ErrNotFound)

	svc := newTestOrderService(repo, new(mocks.MockPublisher))
	err := svc.DeleteOrder(context.Background(), testOrderID)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}
