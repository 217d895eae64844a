package services

import (
	"context"
	"sync"

	"github.com/Soham964/AGRO/internal/client/api"
	"github.com/Soham964/AGRO/internal/client/models"
	"github.com/Soham964/AGRO/internal/logging"
)

// CartStore owns the client's view of the shopping cart.
//
// The held cart is always a server-computed snapshot: every successful
// mutation replaces it wholesale with the backend's response, and a failed
// mutation leaves it untouched (the UI may show stale data until a
// refresh). Mutations are no-ops while unauthenticated. Two overlapping
// mutations race server-side; whichever response lands last wins.
type CartStore interface {
	AddToCart(ctx context.Context, productID int64, quantity int)
	UpdateCartItem(ctx context.Context, itemID int64, quantity int)
	RemoveFromCart(ctx context.Context, itemID int64)
	ClearCart(ctx context.Context)
	RefreshCart(ctx context.Context)

	Cart() *models.Cart
	CartItemCount() int
}

type cartStore struct {
	gateway api.Gateway
	session SessionStore
	logger  logging.Logger

	mu   sync.Mutex
	cart *models.Cart
}

// NewCartStore constructs a CartStore and subscribes it to the session's
// authentication flag: the cart is fetched when the flag turns on and
// discarded locally, with no network call, when it turns off.
func NewCartStore(gateway api.Gateway, session SessionStore, logger logging.Logger) CartStore {
	c := &cartStore{gateway: gateway, session: session, logger: logger}
	session.Subscribe(c.onAuthChange)
	return c
}

func (c *cartStore) onAuthChange(ctx context.Context, authenticated bool) {
	if !authenticated {
		c.replace(nil)
		return
	}
	c.RefreshCart(ctx)
}

func (c *cartStore) replace(cart *models.Cart) {
	c.mu.Lock()
	c.cart = cart
	c.mu.Unlock()
}

// Cart returns the held snapshot, nil when no cart is held.
func (c *cartStore) Cart() *models.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart
}

// CartItemCount returns the held cart's item count, zero when no cart is
// held.
func (c *cartStore) CartItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cart == nil {
		return 0
	}
	return c.cart.ItemCount
}

// RefreshCart refetches the cart, or clears it when unauthenticated. A
// failed fetch also clears: an unreadable cart is not worth rendering.
func (c *cartStore) RefreshCart(ctx context.Context) {
	if !c.session.IsAuthenticated() {
		c.replace(nil)
		return
	}

	cart, err := c.gateway.Cart(ctx)
	if err != nil {
		c.logger.Error(ctx, "fetching cart failed", "error", err)
		c.replace(nil)
		return
	}
	c.replace(cart)
}

// AddToCart adds quantity units of a product. The quantity is forwarded
// as-is; the backend validates it.
func (c *cartStore) AddToCart(ctx context.Context, productID int64, quantity int) {
	if !c.session.IsAuthenticated() {
		return
	}

	cart, err := c.gateway.AddToCart(ctx, productID, quantity)
	if err != nil {
		c.logger.Error(ctx, "adding to cart failed", "product_id", productID, "quantity", quantity, "error", err)
		return
	}
	c.replace(cart)
}

func (c *cartStore) UpdateCartItem(ctx context.Context, itemID int64, quantity int) {
	if !c.session.IsAuthenticated() {
		return
	}

	cart, err := c.gateway.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		c.logger.Error(ctx, "updating cart item failed", "item_id", itemID, "quantity", quantity, "error", err)
		return
	}
	c.replace(cart)
}

func (c *cartStore) RemoveFromCart(ctx context.Context, itemID int64) {
	if !c.session.IsAuthenticated() {
		return
	}

	cart, err := c.gateway.RemoveFromCart(ctx, itemID)
	if err != nil {
		c.logger.Error(ctx, "removing cart item failed", "item_id", itemID, "error", err)
		return
	}
	c.replace(cart)
}

func (c *cartStore) ClearCart(ctx context.Context) {
	if !c.session.IsAuthenticated() {
		return
	}

	cart, err := c.gateway.ClearCart(ctx)
	if err != nil {
		c.logger.Error(ctx, "clearing cart failed", "error", err)
		return
	}
	c.replace(cart)
}
