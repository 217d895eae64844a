package cli

import (
	"context"
	"fmt"
)

// ShowCart refreshes and prints the cart.
func (a *App) ShowCart(ctx context.Context) error {
	a.cart.RefreshCart(ctx)

	cart := a.cart.Cart()
	if cart == nil || len(cart.Items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	for _, item := range cart.Items {
		fmt.Fprintf(a.out, "  [%d] %s — %d x %.2f/%s = %.2f\n",
			item.ID, item.Product.Name, item.Quantity, item.Product.Price, item.Product.Unit, item.Total)
	}
	fmt.Fprintf(a.out, "Total: %.2f (%d item(s))\n", cart.Total, cart.ItemCount)
	return nil
}

// Add puts a product into the cart.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	productID, err := GetInt(a.reader, "Product ID", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	quantity, err := GetIntDefault(a.reader, "Quantity (empty for 1)", 1, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.cart.AddToCart(ctx, productID, int(quantity))
	fmt.Fprintf(a.out, "Cart now has %d item(s).\n", a.cart.CartItemCount())
	return nil
}

// Update changes a cart line's quantity.
func (a *App) Update(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	itemID, err := GetInt(a.reader, "Cart item ID", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	quantity, err := GetInt(a.reader, "New quantity", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.cart.UpdateCartItem(ctx, itemID, int(quantity))
	fmt.Fprintf(a.out, "Cart now has %d item(s).\n", a.cart.CartItemCount())
	return nil
}

// Remove deletes a line from the cart.
func (a *App) Remove(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	itemID, err := GetInt(a.reader, "Cart item ID", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.cart.RemoveFromCart(ctx, itemID)
	fmt.Fprintf(a.out, "Cart now has %d item(s).\n", a.cart.CartItemCount())
	return nil
}

// EmptyCart clears the cart after confirmation.
func (a *App) EmptyCart(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	ok, err := Confirm(a.reader, "Remove everything from your cart?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	a.cart.ClearCart(ctx)
	fmt.Fprintln(a.out, "Cart cleared.")
	return nil
}
