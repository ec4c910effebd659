package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
)

// CartService is the storefront's cart state store. Its consistency
// model is re-fetch-after-mutation: every mutating operation pushes the
// change to the commerce API and then reads the whole cart back, so the
// server's copy is always authoritative. Mutations are serialized per
// user, so rapid repeated clicks cannot apply out of order.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*model.Cart, error)
	AddItem(ctx context.Context, userID string, item model.CartItem) (*model.Cart, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*model.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type cartServiceImpl struct {
	client   client.CartClient
	currency string
	locks    userLocks
	sfg      singleflight.Group
	log      logrus.FieldLogger
}

func NewCartService(cartClient client.CartClient, currency string, log logrus.FieldLogger) CartService {
	return &cartServiceImpl{
		client:   cartClient,
		currency: currency,
		log:      log,
	}
}

// Subtotal is the sum of price × quantity over the cart's items.
func Subtotal(cart *model.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (*model.Cart, error) {
	// Concurrent reads for the same user collapse into one round trip.
	// Every caller of the shared flight gets the same pointer back, so
	// each takes its own copy before decorating.
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		return s.client.Get(ctx, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return s.decorate(copyCart(v.(*model.Cart))), nil
}

func copyCart(cart *model.Cart) *model.Cart {
	out := &model.Cart{UserID: cart.UserID, Items: make([]model.CartItem, len(cart.Items))}
	copy(out.Items, cart.Items)
	return out
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID string, item model.CartItem) (*model.Cart, error) {
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.client.AddItem(ctx, userID, item); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"user": userID, "product": item.ProductID, "quantity": item.Quantity}).
		Debug("added item to cart")
	return s.refetch(ctx, userID)
}

func (s *cartServiceImpl) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.client.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return s.refetch(ctx, userID)
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, productID string) (*model.Cart, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.client.RemoveItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.refetch(ctx, userID)
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	return s.client.Clear(ctx, userID)
}

func (s *cartServiceImpl) refetch(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := s.client.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("refetch cart after mutation: %w", err)
	}
	return s.decorate(cart), nil
}

func (s *cartServiceImpl) decorate(cart *model.Cart) *model.Cart {
	for i := range cart.Items {
		cart.Items[i].FormattedPrice = money.Format(s.currency, cart.Items[i].Price)
	}
	return cart
}

// userLocks hands out one mutex per user id.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
