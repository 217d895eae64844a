// Package services contains the application services of the AGRO storefront
// client.
//
// Two of them are stateful stores the UI renders from:
//
//   - SessionStore owns the authenticated identity and the credential
//     token's lifecycle. Its public operations report success as a boolean
//     and log failures instead of propagating errors; only the startup
//     restore fails silently.
//   - CartStore owns the cart snapshot. It subscribes to the session's
//     authentication flag: the cart is fetched when the flag turns on and
//     discarded locally when it turns off. Every successful mutation
//     replaces the whole snapshot with the server's response; a failed one
//     leaves the held snapshot untouched.
//
// Catalog and Orders are stateless pass-throughs over the gateway for the
// product and order endpoints; they propagate errors to the caller.
package services
