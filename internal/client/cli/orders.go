package cli

import (
	"context"
	"fmt"
)

// Checkout places orders for the cart's contents. The backend creates one
// order per seller and empties the cart.
func (a *App) Checkout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	a.cart.RefreshCart(ctx)
	if a.cart.CartItemCount() == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	address, err := getSimpleText(a.reader, "Delivery address", a.out)
	if err != nil {
		return err
	}

	orders, err := a.orders.CreateFromCart(ctx, address)
	if err != nil {
		fmt.Fprintf(a.out, "Checkout failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Placed %d order(s):\n", len(orders))
	for _, o := range orders {
		fmt.Fprintf(a.out, "  #%d from %s — %.2f (%s)\n", o.ID, o.SellerName, o.TotalAmount, o.Status)
	}

	// the server emptied the cart; refetch so the prompt agrees
	a.cart.RefreshCart(ctx)
	return nil
}

// Orders lists the buyer's orders.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.orders.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load orders: %v\n", err)
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet.")
		return nil
	}

	for _, o := range orders {
		eta := "n/a"
		if o.DeliveryETA != nil {
			eta = o.DeliveryETA.Format("2006-01-02")
		}
		fmt.Fprintf(a.out, "  #%d  %s  from %s  %.2f  %s  ETA %s\n",
			o.ID, o.OrderDate.Format("2006-01-02"), o.SellerName, o.TotalAmount, o.Status, eta)
	}
	return nil
}

// ShowOrder prints one order with its lines.
func (a *App) ShowOrder(ctx context.Context) error {
	id, err := GetInt(a.reader, "Order ID", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	o, err := a.orders.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load order %d: %v\n", id, err)
		return err
	}

	fmt.Fprintf(a.out, "Order #%d — %s, placed %s\n", o.ID, o.Status, o.OrderDate.Format("2006-01-02 15:04"))
	fmt.Fprintf(a.out, "  Seller:   %s\n", o.SellerName)
	fmt.Fprintf(a.out, "  Delivery: %s\n", o.DeliveryAddress)
	for _, item := range o.Items {
		fmt.Fprintf(a.out, "  %s — %d x %.2f = %.2f\n",
			item.Product.Name, item.Quantity, item.PriceAtOrderTime, item.Total)
	}
	fmt.Fprintf(a.out, "  Total: %.2f\n", o.TotalAmount)
	return nil
}
