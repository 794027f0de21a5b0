package services_test

import (
	"fmt"
	"testing"

	"niaga/internal/models"
	"niaga/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestOrderService_GetAllOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	expectedOrders := []models.Order{
		{ID: "ord-1", OrderNumber: "ORD20250601-000001", Total: 29.97, Status: models.OrderStatusPending},
		{ID: "ord-2", OrderNumber: "ORD20250601-000002", Total: 75.00, Status: models.OrderStatusShipped},
	}

	mockRepo.On("GetAll").Return(expectedOrders, nil).Once()

	orders, err := service.GetAllOrders()

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, expectedOrders, orders)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	expectedOrder := &models.Order{ID: "ord-1", OrderNumber: "ORD20250601-000001", Total: 29.97}

	// Test successful retrieval
	mockRepo.On("GetByID", "ord-1").Return(expectedOrder, nil).Once()
	order, err := service.GetOrderByID("ord-1")
	assert.NoError(t, err)
	assert.Equal(t, expectedOrder, order)
	mockRepo.AssertExpectations(t)

	// Test order not found
	mockRepo.On("GetByID", "ord-99").Return(nil, fmt.Errorf("order with ID ord-99 not found")).Once()
	order, err = service.GetOrderByID("ord-99")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	// Test successful status update
	mockRepo.On("UpdateStatus", "ord-1", models.OrderStatusProcessing).Return(nil).Once()
	err := service.UpdateOrderStatus("ord-1", models.OrderStatusProcessing)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test invalid status is rejected before touching the repository
	err = service.UpdateOrderStatus("ord-1", "teleported")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	mockRepo.AssertNotCalled(t, "UpdateStatus", "ord-1", "teleported")

	// Test order not found
	mockRepo.On("UpdateStatus", "ord-99", models.OrderStatusCancelled).
		Return(fmt.Errorf("order with ID ord-99 not found for status update")).Once()
	err = service.UpdateOrderStatus("ord-99", models.OrderStatusCancelled)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for status update")
	mockRepo.AssertExpectations(t)
}
