package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Soham964/AGRO/internal/client/models"
	"github.com/Soham964/AGRO/internal/client/repositories/metadata"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	contentTypeJSON     = "application/json"

	// tokenKey is the fixed storage key the credential token lives under.
	tokenKey = "auth_token"
)

// HTTPClient is the Gateway implementation over the backend's REST API.
//
// The credential token is cached in memory and backed by the injected
// metadata repository; the repository copy is read once, lazily, on first
// use. The client is safe for concurrent use.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     metadata.Repository

	mu          sync.Mutex
	token       string
	tokenLoaded bool
}

// NewHTTPClient builds a gateway against baseURL (e.g.
// "http://localhost:8000/api"). A zero timeout means no client-side
// timeout; callers bound individual requests via context.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens metadata.Repository) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// SetToken stores the token in memory and writes it through to the
// repository so a later process can restore the session.
func (c *HTTPClient) SetToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.tokenLoaded = true
	c.mu.Unlock()

	if err := c.tokens.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Token returns the cached token, loading it from the repository on first
// call. An empty string means no token is cached.
func (c *HTTPClient) Token(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.tokenLoaded {
		c.tokenLoaded = true
		value, err := c.tokens.Get(ctx, tokenKey)
		if err == nil {
			c.token = string(value)
		} else if !errors.Is(err, metadata.ErrNotFound) {
			// Unreadable storage is treated as no token; the next
			// SetToken will try to repair it.
			c.token = ""
		}
	}
	return c.token
}

// ClearToken wipes the token from memory and storage.
func (c *HTTPClient) ClearToken(ctx context.Context) error {
	c.mu.Lock()
	c.token = ""
	c.tokenLoaded = true
	c.mu.Unlock()

	if err := c.tokens.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// multipartPayload is a prepared multipart body with its boundary-bearing
// content type. doRequest sends it as-is instead of JSON-encoding it.
type multipartPayload struct {
	contentType string
	body        *bytes.Buffer
}

// doRequest performs one HTTP round trip. body may be nil, a
// *multipartPayload, or any JSON-encodable value; result, when non-nil,
// receives the decoded JSON response.
//
// A 401 clears the cached token before the error is returned.
func (c *HTTPClient) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	var (
		bodyReader  io.Reader
		contentType string
	)
	switch payload := body.(type) {
	case nil:
	case *multipartPayload:
		bodyReader = payload.body
		contentType = payload.contentType
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = contentTypeJSON
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set(headerContentType, contentType)
	}
	if token := c.Token(ctx); token != "" {
		req.Header.Set(headerAuthorization, "Token "+token)
	}
	req.Header.Set(headerRequestID, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized {
			_ = c.ClearToken(ctx)
		}
		return parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, result any) error {
	return c.doRequest(ctx, http.MethodGet, endpoint, nil, result)
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, body, result any) error {
	return c.doRequest(ctx, http.MethodPost, endpoint, body, result)
}

func (c *HTTPClient) put(ctx context.Context, endpoint string, body, result any) error {
	return c.doRequest(ctx, http.MethodPut, endpoint, body, result)
}

func (c *HTTPClient) delete(ctx context.Context, endpoint string, result any) error {
	return c.doRequest(ctx, http.MethodDelete, endpoint, nil, result)
}

// Login exchanges credentials for a token and the user record. The token is
// returned to the caller, not stored; the session layer decides that.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp models.AuthResponse
	if err := c.post(ctx, "/users/login/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. The form always goes out as multipart so the
// optional identity document can ride along; the content type carries the
// writer's boundary and is never forced to JSON.
func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error) {
	payload, err := encodeRegistration(reg)
	if err != nil {
		return nil, err
	}
	var resp models.AuthResponse
	if err := c.post(ctx, "/users/register/", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func encodeRegistration(reg models.Registration) (*multipartPayload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range reg.Fields() {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, fmt.Errorf("encode registration field %s: %w", field[0], err)
		}
	}
	if doc := reg.AadharCardImage; doc != nil {
		part, err := writer.CreateFormFile("aadhar_card_image", doc.Filename)
		if err != nil {
			return nil, fmt.Errorf("encode identity document: %w", err)
		}
		if _, err := part.Write(doc.Content); err != nil {
			return nil, fmt.Errorf("encode identity document: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart form: %w", err)
	}
	return &multipartPayload{contentType: writer.FormDataContentType(), body: &buf}, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/users/me/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.put(ctx, "/users/me/", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) SendOTP(ctx context.Context, email string, purpose models.OTPPurpose) error {
	body := map[string]string{"email": email, "purpose": string(purpose)}
	return c.post(ctx, "/otp/send_otp/", body, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) error {
	body := map[string]string{"email": email, "otp_code": code, "purpose": string(purpose)}
	return c.post(ctx, "/otp/verify_otp/", body, nil)
}

func (c *HTTPClient) LoginWithOTP(ctx context.Context, email, code string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "otp_code": code}
	var resp models.AuthResponse
	if err := c.post(ctx, "/otp/login_with_otp/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Products(ctx context.Context, query ProductQuery) (*models.ProductPage, error) {
	endpoint := "/products/"
	if qs := query.encode(); qs != "" {
		endpoint += "?" + qs
	}
	var page models.ProductPage
	if err := c.get(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) Product(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d/", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPClient) ProductCategories(ctx context.Context) ([]models.CategoryOption, error) {
	var categories []models.CategoryOption
	if err := c.get(ctx, "/products/categories/", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) SearchProducts(ctx context.Context, q, category, sort string) ([]models.Product, error) {
	values := url.Values{}
	if q != "" {
		values.Set("q", q)
	}
	if category != "" && category != "all" {
		values.Set("category", category)
	}
	if sort != "" {
		values.Set("sort", sort)
	}
	endpoint := "/products/search/"
	if qs := values.Encode(); qs != "" {
		endpoint += "?" + qs
	}
	var products []models.Product
	if err := c.get(ctx, endpoint, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) Cart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.get(ctx, "/carts/my_cart/", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) AddToCart(ctx context.Context, productID int64, quantity int) (*models.Cart, error) {
	body := map[string]any{"product_id": productID, "quantity": quantity}
	var cart models.Cart
	if err := c.post(ctx, "/carts/add_item/", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*models.Cart, error) {
	body := map[string]any{"item_id": itemID, "quantity": quantity}
	var cart models.Cart
	if err := c.put(ctx, "/carts/update_item/", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) RemoveFromCart(ctx context.Context, itemID int64) (*models.Cart, error) {
	var cart models.Cart
	endpoint := "/carts/remove_item/?item_id=" + strconv.FormatInt(itemID, 10)
	if err := c.delete(ctx, endpoint, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) ClearCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.delete(ctx, "/carts/clear_cart/", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *HTTPClient) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/orders/", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrderFromCart places an order for the current cart's contents,
// one order per seller, and empties the cart server-side.
func (c *HTTPClient) CreateOrderFromCart(ctx context.Context, deliveryAddress string) ([]models.Order, error) {
	body := map[string]string{"delivery_address": deliveryAddress}
	var orders []models.Order
	if err := c.post(ctx, "/orders/create_from_cart/", body, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) Order(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d/", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}
