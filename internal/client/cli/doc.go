// Package cli is the interactive storefront: a REPL whose commands map to
// the marketplace's pages — login, registration, the shop, the cart,
// checkout, orders and the profile. Command handlers read their input
// through prompt helpers with test seams and render plain text; all state
// lives in the services layer.
package cli
