package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soham964/AGRO/internal/client/models"
)

func loginAlice(t *testing.T, fg *fakeGateway, s SessionStore) {
	t.Helper()
	fg.loginResp = &models.AuthResponse{Token: "t1", User: models.User{ID: 1, Username: "alice"}}
	require.True(t, s.Login(context.Background(), "alice", "secret"))
}

func TestCart_MutationsAreNoOpsWhileLoggedOut(t *testing.T) {
	ctx := context.Background()
	fg := &fakeGateway{}
	s := NewSessionStore(fg, testLogger())
	c := NewCartStore(fg, s, testLogger())

	c.AddToCart(ctx, 7, 2)
	c.UpdateCartItem(ctx, 1, 3)
	c.RemoveFromCart(ctx, 1)
	c.ClearCart(ctx)

	assert.Nil(t, c.Cart())
	assert.Zero(t, c.CartItemCount())
	assert.Zero(t, fg.callCount("AddToCart"))
	assert.Zero(t, fg.callCount("UpdateCartItem"))
	assert.Zero(t, fg.callCount("RemoveFromCart"))
	assert.Zero(t, fg.callCount("ClearCart"))
}

func TestCart_FetchedOnLogin(t *testing.T) {
	fg := &fakeGateway{cartResp: &models.Cart{ID: 1, ItemCount: 2}}
	s := NewSessionStore(fg, testLogger())
	c := NewCartStore(fg, s, testLogger())

	assert.Zero(t, c.CartItemCount())
	loginAlice(t, fg, s)

	assert.Equal(t, 1, fg.callCount("Cart"))
	assert.Equal(t, 2, c.CartItemCount())
}

func TestCart_DiscardedOnLogoutWithoutNetwork(t *testing.T) {
	ctx := context.Background()
	fg := &fakeGateway{cartResp: &models.Cart{ID: 1, ItemCount: 2}}
	s := NewSessionStore(fg, testLogger())
	c := NewCartStore(fg, s, testLogger())
	loginAlice(t, fg, s)
	require.NotNil(t, c.Cart())

	s.Logout(ctx)

	assert.Nil(t, c.Cart())
	assert.Zero(t, c.CartItemCount())
	assert.Equal(t, 1, fg.callCount("Cart"), "logout must not touch the cart endpoint")
	assert.Zero(t, fg.callCount("ClearCart"))
}

func TestCart_AddReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	fg := &fakeGateway{cartResp: &models.Cart{ID: 1, ItemCount: 0}}
	s := NewSessionStore(fg, testLogger())
	c := NewCartStore(fg, s, testLogger())
	loginAlice(t, fg, s)

	fg.addResp = &models.Cart{
		ID:        1,
		ItemCount: 3,
		Total:     29.97,
		Items:     []models.CartItem{{ID: 10, ProductID: 7, Quantity: 3, Total: 29.97}},
	}
	c.AddToCart(ctx, 7, 3)

	require.NotNil(t, c.Cart())
	assert.Equal(t, 3, c.CartItemCount())
	assert.Equal(t, fg.addResp, c.Cart(), "the held cart is the server's response, not a local merge")
}

func TestCart_FailedMutationLeavesSnapshotUntouched(t *testing.T) {
	ctx := context.Background()
	held := &models.Cart{
		ID:        1,
		ItemCount: 2,
		Items:     []models.CartItem{{ID: 10, ProductID: 7, Quantity: 2}},
	}
	fg := &fakeGateway{cartResp: held}
	s := NewSessionStore(fg, testLogger())
	c := NewCartStore(fg, s, testLogger())
	loginAlice(t, fg, s)
	require.Same(t, held, c.Cart())

	fg.updateErr = errors.New("not enough stock")
	c.UpdateCartItem(ctx, 10, 50)

	assert.Same(t, held, c.Cart(), "a failed mutation must not alter the held cart")
	assert.Equal(t, 2, c.CartItemCount())

	fg.removeErr = errors.New("backend down")
	c.RemoveFromCart(ctx, 10)
	assert.Same(t, held, c.Cart())
}

func TestCart_ClearEmptiesSnapshot(t *testing.T) {
	ctx := context.Background()
	fg := &fakeGateway{cartResp: &models.Cart{ID: 1, ItemCount: 2}}
	s := NewSessionStore(fg, testLogger())
	c := NewCartStore(fg, s, testLogger())
	loginAlice(t, fg, s)

	fg.clearResp = &models.Cart{ID: 1, ItemCount: 0, Items: []models.CartItem{}}
	c.ClearCart(ctx)

	assert.Zero(t, c.CartItemCount())
	require.NotNil(t, c.Cart())
	assert.Empty(t, c.Cart().Items)
}

func TestRefreshCart(t *testing.T) {
	ctx := context.Background()

	t.Run("logged out clears without network", func(t *testing.T) {
		fg := &fakeGateway{}
		s := NewSessionStore(fg, testLogger())
		c := NewCartStore(fg, s, testLogger())

		c.RefreshCart(ctx)

		assert.Nil(t, c.Cart())
		assert.Zero(t, fg.callCount("Cart"))
	})

	t.Run("fetch failure clears the held cart", func(t *testing.T) {
		fg := &fakeGateway{cartResp: &models.Cart{ID: 1, ItemCount: 2}}
		s := NewSessionStore(fg, testLogger())
		c := NewCartStore(fg, s, testLogger())
		loginAlice(t, fg, s)
		require.NotNil(t, c.Cart())

		fg.cartResp = nil
		fg.cartErr = errors.New("backend down")
		c.RefreshCart(ctx)

		assert.Nil(t, c.Cart())
	})

	t.Run("refetch replaces the held cart", func(t *testing.T) {
		fg := &fakeGateway{cartResp: &models.Cart{ID: 1, ItemCount: 1}}
		s := NewSessionStore(fg, testLogger())
		c := NewCartStore(fg, s, testLogger())
		loginAlice(t, fg, s)

		fg.cartResp = &models.Cart{ID: 1, ItemCount: 4}
		c.RefreshCart(ctx)

		assert.Equal(t, 4, c.CartItemCount())
	})
}
