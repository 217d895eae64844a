package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	LoginOTP(ctx context.Context) error
	Register(ctx context.Context) error
	Shop(ctx context.Context) error
	Search(ctx context.Context) error
	ShowProduct(ctx context.Context) error
	ShowCart(ctx context.Context) error
	Add(ctx context.Context) error
	Update(ctx context.Context) error
	Remove(ctx context.Context) error
	EmptyCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	ShowOrder(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the storefront's read-eval-print loop.
//
// It reads a line from the scanner, takes the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Browsing commands work logged out; cart and order commands require a
// session (the stores no-op or the backend rejects the call otherwise).
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("agro> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: shop, search, product, cart, add, update, remove, emptycart, checkout, orders, order, profile, editprofile, logout, exit")
			} else {
				printlnFn("Available commands: login, otp, register, shop, search, product, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "otp":
			_ = a.LoginOTP(ctx)

		case "register":
			_ = a.Register(ctx)

		case "shop":
			_ = a.Shop(ctx)

		case "search":
			_ = a.Search(ctx)

		case "product":
			_ = a.ShowProduct(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			_ = a.Add(ctx)

		case "update":
			_ = a.Update(ctx)

		case "remove":
			_ = a.Remove(ctx)

		case "emptycart":
			_ = a.EmptyCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "order":
			_ = a.ShowOrder(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
