package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
	"storefront-gateway/internal/repository"
)

func testConfig(baseURL string) Config {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return Config{BaseURL: baseURL, Log: log}
}

// fakeProductRepo stands in for the offline store in fallback tests.
type fakeProductRepo struct {
	products []model.Product
}

func (f *fakeProductRepo) List(context.Context) ([]model.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Get(_ context.Context, id string) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepo) Search(context.Context, string) ([]model.Product, error) {
	return f.products, nil
}

type fakeCartRepo struct {
	cart model.Cart
}

func (f *fakeCartRepo) Get(context.Context, string) (*model.Cart, error) {
	cart := f.cart
	return &cart, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, _ string, item model.CartItem) error {
	for i := range f.cart.Items {
		if f.cart.Items[i].ProductID == item.ProductID {
			f.cart.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	f.cart.Items = append(f.cart.Items, item)
	return nil
}

func (f *fakeCartRepo) SetQuantity(_ context.Context, _ string, productID string, quantity int) error {
	for i := range f.cart.Items {
		if f.cart.Items[i].ProductID == productID {
			f.cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return repository.ErrCartItemNotFound
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, _ string, productID string) error {
	for i, item := range f.cart.Items {
		if item.ProductID == productID {
			f.cart.Items = append(f.cart.Items[:i], f.cart.Items[i+1:]...)
			return nil
		}
	}
	return repository.ErrCartItemNotFound
}

func (f *fakeCartRepo) Clear(context.Context, string) error {
	f.cart.Items = nil
	return nil
}

func TestProductListDecodesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Write([]byte(`[{"id":"1","name":"Phone","price":99.5,"originalPrice":129,"brand":"TechCo"}]`))
	}))
	defer srv.Close()

	c := NewProductClient(testConfig(srv.URL), nil)
	products, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Phone", products[0].Name)
	assert.Equal(t, "99.50", products[0].Price.StringFixed(2))
	assert.Equal(t, "129.00", products[0].OriginalPrice.StringFixed(2))
	assert.Equal(t, "TechCo", products[0].Brand)
}

func TestProductListDecodesWrappedObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"id":"1","name":"Phone","price":99},{"id":"2","name":"Laptop","price":499}]}`))
	}))
	defer srv.Close()

	c := NewProductClient(testConfig(srv.URL), nil)
	products, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductGetNormalizesFixedPointPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"1","name":"Phone","priceUsd":{"units":12,"nanos":500000000}}`))
	}))
	defer srv.Close()

	c := NewProductClient(testConfig(srv.URL), nil)
	product, err := c.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "12.50", product.Price.StringFixed(2))
}

func TestProductPriceObjectInsidePriceField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","name":"Phone","price":{"units":99,"nanos":0}}]`))
	}))
	defer srv.Close()

	c := NewProductClient(testConfig(srv.URL), nil)
	products, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "99.00", products[0].Price.StringFixed(2))
}

func TestProductClientReportsUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewProductClient(testConfig(srv.URL), nil)
	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestProductClientFallsBackToSampleCatalog(t *testing.T) {
	fallback := &fakeProductRepo{products: []model.Product{
		{ID: "1", Name: "Phone", Price: money.FromFloat(99)},
	}}
	// unreachable address forces the fallback path
	c := NewProductClient(testConfig("http://127.0.0.1:1"), fallback)

	products, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Phone", products[0].Name)

	product, err := c.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", product.ID)

	_, err = c.Get(context.Background(), "999")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCartGetDecodesObjectAndBareArray(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"cart object", `{"userId":"123","items":[{"productId":"2","quantity":1}]}`},
		{"bare item array", `[{"productId":"2","quantity":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewCartClient(testConfig(srv.URL), nil)
			cart, err := c.Get(context.Background(), "123")
			require.NoError(t, err)
			assert.Equal(t, "123", cart.UserID)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, "2", cart.Items[0].ProductID)
		})
	}
}

func TestCartGetEmptyBodyYieldsEmptyCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	c := NewCartClient(testConfig(srv.URL), nil)
	cart, err := c.Get(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "123", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestCartMutationsHitExpectedEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewCartClient(testConfig(srv.URL), nil)
	ctx := context.Background()

	require.NoError(t, c.AddItem(ctx, "123", model.CartItem{ProductID: "2", Quantity: 1}))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/cart/123/items", gotPath)

	require.NoError(t, c.SetQuantity(ctx, "123", "2", 3))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/cart/123/items/2", gotPath)

	require.NoError(t, c.RemoveItem(ctx, "123", "2"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cart/123/items/2", gotPath)

	require.NoError(t, c.Clear(ctx, "123"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cart/123", gotPath)
}

func TestCartFallbackKeepsMutationsConsistent(t *testing.T) {
	fallback := &fakeCartRepo{cart: model.Cart{UserID: "123"}}
	c := NewCartClient(testConfig("http://127.0.0.1:1"), fallback)
	ctx := context.Background()

	require.NoError(t, c.AddItem(ctx, "123", model.CartItem{ProductID: "2", Quantity: 1}))
	require.NoError(t, c.AddItem(ctx, "123", model.CartItem{ProductID: "2", Quantity: 1}))

	cart, err := c.Get(ctx, "123")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	require.NoError(t, c.RemoveItem(ctx, "123", "2"))
	cart, err = c.Get(ctx, "123")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func orderRequest() dto.OrderRequest {
	return dto.OrderRequest{
		Items:         []model.CartItem{{ProductID: "2", Quantity: 1, Price: money.FromFloat(99)}},
		AddressID:     "addr-1",
		PaymentMethod: "alipay",
		Total:         money.FromFloat(109),
		ShippingFee:   money.FromFloat(10),
	}
}

func paymentRequest(orderID string) dto.PaymentRequest {
	return dto.PaymentRequest{OrderID: orderID, Method: "alipay", Amount: money.FromFloat(109)}
}

func TestCheckoutClientOrderAndPaymentEndpoints(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/checkout/123/orders":
			w.Write([]byte(`{"id":"order-1","status":"CREATED","total":109}`))
		case "/checkout/payment/order-1":
			w.Write([]byte(`{"orderId":"order-1","status":"COMPLETED"}`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := NewCheckoutClient(testConfig(srv.URL), nil)
	ctx := context.Background()

	order, err := c.CreateOrder(ctx, "123", orderRequest())
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, model.OrderStatusCreated, order.Status)

	result, err := c.ProcessPayment(ctx, order.ID, paymentRequest(order.ID))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusCompleted, result.Status)

	assert.Equal(t, []string{
		"POST /checkout/123/orders",
		"POST /checkout/payment/order-1",
	}, paths)
}

func TestCheckoutClientWithoutFallbackReportsError(t *testing.T) {
	c := NewCheckoutClient(testConfig("http://127.0.0.1:1"), nil)

	_, err := c.ListAddresses(context.Background(), "123")
	require.Error(t, err)
}
