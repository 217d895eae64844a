// Package api contains the client-side gateway to the AGRO marketplace
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Gateway interface) covering
//     authentication, the product catalog, the cart, orders and the OTP flow.
//  2. A concrete HTTP implementation (see HTTPClient) that builds URLs
//     against a fixed base, injects the credential token as an
//     "Authorization: Token <v>" header, encodes bodies as JSON or multipart
//     form data, and normalizes error responses.
//  3. Token accessors backed by an injected metadata repository: the token
//     is cached in memory and written through to persistent storage, so a
//     restarted process can restore its session.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the HTTP status and
// the server-provided message. Authentication failures additionally match
// ErrUnauthorized via errors.Is, and as a side effect clear the cached
// token: callers must not assume the token survives any failed request.
// Transport-level failures match ErrUnavailable.
//
// There is no retry, no backoff and no request deduplication; timeouts come
// only from the configured http.Client and the caller's context.
package api
