package services

import (
	"context"
	"errors"

	"github.com/Soham964/AGRO/internal/client/api"
	"github.com/Soham964/AGRO/internal/client/models"
)

// ErrEmptyDeliveryAddress is returned by CreateFromCart when no delivery
// address was given; it is a required field of the checkout form.
var ErrEmptyDeliveryAddress = errors.New("delivery address is required")

// Orders exposes the buyer's orders and checkout. Stateless; errors
// propagate to the caller.
type Orders interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	// CreateFromCart checks out the current cart. The backend splits the
	// cart per seller, so several orders may come back.
	CreateFromCart(ctx context.Context, deliveryAddress string) ([]models.Order, error)
}

type orders struct {
	gateway api.Gateway
}

func NewOrders(gateway api.Gateway) Orders {
	return &orders{gateway: gateway}
}

func (o *orders) List(ctx context.Context) ([]models.Order, error) {
	return o.gateway.Orders(ctx)
}

func (o *orders) Get(ctx context.Context, id int64) (*models.Order, error) {
	return o.gateway.Order(ctx, id)
}

func (o *orders) CreateFromCart(ctx context.Context, deliveryAddress string) ([]models.Order, error) {
	if deliveryAddress == "" {
		return nil, ErrEmptyDeliveryAddress
	}
	return o.gateway.CreateOrderFromCart(ctx, deliveryAddress)
}
