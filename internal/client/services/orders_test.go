package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soham964/AGRO/internal/client/models"
)

func TestOrders_CreateFromCart_RequiresAddress(t *testing.T) {
	fg := &fakeGateway{}
	o := NewOrders(fg)

	_, err := o.CreateFromCart(context.Background(), "")

	require.ErrorIs(t, err, ErrEmptyDeliveryAddress)
	assert.Zero(t, fg.callCount("CreateOrderFromCart"), "rejected before the network")
}

func TestOrders_CreateFromCart_PropagatesOrders(t *testing.T) {
	fg := &fakeGateway{createdOrders: []models.Order{
		{ID: 1, Status: models.OrderPending},
		{ID: 2, Status: models.OrderPending},
	}}
	o := NewOrders(fg)

	got, err := o.CreateFromCart(context.Background(), "12 Market Rd")

	require.NoError(t, err)
	assert.Len(t, got, 2, "one order per seller")
}

func TestOrders_ListPropagatesErrors(t *testing.T) {
	fg := &fakeGateway{ordersErr: errors.New("backend down")}
	o := NewOrders(fg)

	_, err := o.List(context.Background())

	assert.Error(t, err)
}
