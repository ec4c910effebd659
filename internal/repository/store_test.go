package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
)

var (
	storeOnce sync.Once
	store     *Store
	storeErr  error
)

// testStore opens the shared in-memory database once for the package.
// Mutation tests use their own user ids so the seeded sample data stays
// intact for the read-only assertions.
func testStore(t *testing.T) *Store {
	t.Helper()
	storeOnce.Do(func() {
		db, err := Open()
		if err != nil {
			storeErr = err
			return
		}
		store = NewStore(db)
	})
	require.NoError(t, storeErr)
	return store
}

func TestSeedLoadsSampleCatalog(t *testing.T) {
	s := testStore(t)

	products, err := s.Products.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 8)
	assert.Equal(t, "Premium T-Shirt", products[0].Name)
	assert.Equal(t, "99.00", products[0].Price.StringFixed(2))
	assert.Equal(t, "129.00", products[0].OriginalPrice.StringFixed(2))
	assert.Equal(t, "StyleWear", products[0].Brand)
	assert.Equal(t, "China", products[0].Origin)

	product, err := s.Products.Get(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, "Thermos Bottle", product.Name)

	_, err = s.Products.Get(context.Background(), "999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSeedLoadsSampleCartAndAddresses(t *testing.T) {
	s := testStore(t)

	cart, err := s.Carts.Get(context.Background(), SampleUserID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "2", cart.Items[0].ProductID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, "6", cart.Items[1].ProductID)
	assert.Equal(t, 2, cart.Items[1].Quantity)

	addresses, err := s.Addresses.List(context.Background(), SampleUserID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, "Zhang San", addresses[0].Name)
	assert.True(t, addresses[0].IsDefault)
}

func TestProductSearchMatchesNameAndDescription(t *testing.T) {
	s := testStore(t)

	byName, err := s.Products.Search(context.Background(), "Watch")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Smart Watch", byName[0].Name)

	byDescription, err := s.Products.Search(context.Background(), "stainless")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Thermos Bottle", byDescription[0].Name)

	none, err := s.Products.Search(context.Background(), "no such thing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCartUnknownUserGetsEmptyCart(t *testing.T) {
	s := testStore(t)

	cart, err := s.Carts.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestCartAddItemMergesQuantity(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	userID := "merge-user"

	item := model.CartItem{ProductID: "1", Name: "Premium T-Shirt", Price: money.FromFloat(99), Quantity: 1}
	require.NoError(t, s.Carts.AddItem(ctx, userID, item))
	require.NoError(t, s.Carts.AddItem(ctx, userID, item))

	cart, err := s.Carts.Get(ctx, userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartSetQuantityAndRemove(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	userID := "update-user"

	item := model.CartItem{ProductID: "3", Name: "Bluetooth Earbuds", Price: money.FromFloat(299), Quantity: 1}
	require.NoError(t, s.Carts.AddItem(ctx, userID, item))

	require.NoError(t, s.Carts.SetQuantity(ctx, userID, "3", 4))
	cart, err := s.Carts.Get(ctx, userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	assert.ErrorIs(t, s.Carts.SetQuantity(ctx, userID, "999", 1), ErrCartItemNotFound)

	require.NoError(t, s.Carts.RemoveItem(ctx, userID, "3"))
	assert.ErrorIs(t, s.Carts.RemoveItem(ctx, userID, "3"), ErrCartItemNotFound)
}

func TestCartClear(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	userID := "clear-user"

	require.NoError(t, s.Carts.AddItem(ctx, userID, model.CartItem{ProductID: "1", Quantity: 1}))
	require.NoError(t, s.Carts.AddItem(ctx, userID, model.CartItem{ProductID: "2", Quantity: 1}))
	require.NoError(t, s.Carts.Clear(ctx, userID))

	cart, err := s.Carts.Get(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestAddressFirstCreateBecomesDefault(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	userID := "address-user"

	first, err := s.Addresses.Create(ctx, userID, model.Address{
		Name: "Wang Wu", Phone: "13700137000", Street: "5 People Square",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.True(t, first.IsDefault)

	second, err := s.Addresses.Create(ctx, userID, model.Address{
		Name: "Wang Wu", Phone: "13700137000", Street: "9 West Lake Ave",
	})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	addresses, err := s.Addresses.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, first.ID, addresses[0].ID)
}

func TestOrderLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	order, err := s.Orders.Create(ctx, &model.Order{
		UserID:        "order-user",
		Items:         []model.CartItem{{ProductID: "2", Name: "Smart Watch", Price: money.FromFloat(499), Quantity: 1}},
		AddressID:     "1",
		PaymentMethod: "alipay",
		ShippingFee:   money.FromFloat(0),
		Total:         money.FromFloat(499),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, model.OrderStatusCreated, order.Status)

	result, err := s.Payments.Process(ctx, order.ID, "alipay", money.FromFloat(499))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusCompleted, result.Status)
	assert.NotEmpty(t, result.PaymentID)

	stored, err := s.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, stored.Status)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Smart Watch", stored.Items[0].Name)

	// paying the same order twice is rejected
	_, err = s.Payments.Process(ctx, order.ID, "alipay", money.FromFloat(499))
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = s.Orders.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
