package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
)

// Step identifies the checkout flow position. The flow is linear:
// address → payment → confirmation; backward navigation from payment to
// address keeps all collected state.
type Step string

const (
	StepAddress      Step = "address"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// PaymentMethods is the fixed set of cardless methods the storefront
// offers.
var PaymentMethods = []string{"alipay", "wechat", "unionpay"}

const defaultPaymentMethod = "alipay"

func validPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Session is the in-memory state of one user's checkout.
type Session struct {
	UserID            string
	Step              Step
	Cart              *model.Cart
	Addresses         []model.Address
	SelectedAddressID string
	PaymentMethod     string
	StartedAt         time.Time
}

// snapshot returns a deep copy safe to read without the service lock.
func (sess *Session) snapshot() *Session {
	out := *sess
	out.Addresses = make([]model.Address, len(sess.Addresses))
	copy(out.Addresses, sess.Addresses)
	out.Cart = copyCart(sess.Cart)
	return &out
}

// Quote is the cost breakdown of a cart: subtotal, shipping fee and
// their sum.
type Quote struct {
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// Confirmation is the terminal result of a submitted checkout.
type Confirmation struct {
	Order   *model.Order
	Payment *model.PaymentResult
	Total   money.Amount
}

type CheckoutService interface {
	Begin(ctx context.Context, userID string) (*Session, error)
	Session(userID string) (*Session, error)
	ListAddresses(ctx context.Context, userID string) ([]model.Address, error)
	AddAddress(ctx context.Context, userID string, addr model.Address) (*model.Address, error)
	SelectAddress(userID, addressID string) error
	SelectPayment(userID, method string) error
	Next(userID string) (*Session, error)
	Back(userID string) (*Session, error)
	Quote(cart *model.Cart) Quote
	Submit(ctx context.Context, userID string) (*Confirmation, error)
}

type checkoutServiceImpl struct {
	cart   CartService
	client client.CheckoutClient

	freeShippingThreshold decimal.Decimal
	flatShippingFee       decimal.Decimal

	mu       sync.Mutex
	sessions map[string]*Session

	log logrus.FieldLogger
}

func NewCheckoutService(cart CartService, checkoutClient client.CheckoutClient, cfg config.Checkout, log logrus.FieldLogger) CheckoutService {
	return &checkoutServiceImpl{
		cart:                  cart,
		client:                checkoutClient,
		freeShippingThreshold: decimal.NewFromFloat(cfg.FreeShippingThreshold),
		flatShippingFee:       decimal.NewFromFloat(cfg.FlatShippingFee),
		sessions:              make(map[string]*Session),
		log:                   log,
	}
}

// live returns the stored session. Callers must hold s.mu and must not
// let the pointer escape the critical section; everything handed to
// callers of the service goes through snapshot.
func (s *checkoutServiceImpl) live(userID string) (*Session, error) {
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Begin loads the cart and the saved addresses and opens a session at
// the address step. The first returned address is preselected, and the
// payment method starts on the storefront default.
func (s *checkoutServiceImpl) Begin(ctx context.Context, userID string) (*Session, error) {
	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	addresses, err := s.client.ListAddresses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}

	sess := &Session{
		UserID:        userID,
		Step:          StepAddress,
		Cart:          cart,
		Addresses:     addresses,
		PaymentMethod: defaultPaymentMethod,
		StartedAt:     time.Now(),
	}
	if len(addresses) > 0 {
		sess.SelectedAddressID = addresses[0].ID
	}

	s.mu.Lock()
	s.sessions[userID] = sess
	snap := sess.snapshot()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"user": userID, "items": len(cart.Items)}).Info("checkout started")
	return snap, nil
}

func (s *checkoutServiceImpl) Session(userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.live(userID)
	if err != nil {
		return nil, err
	}
	return sess.snapshot(), nil
}

func (s *checkoutServiceImpl) ListAddresses(ctx context.Context, userID string) ([]model.Address, error) {
	return s.client.ListAddresses(ctx, userID)
}

// AddAddress stores the address remotely when it can; if the remote call
// fails the storefront keeps working with a session-local address under
// a generated id, like the original form did.
func (s *checkoutServiceImpl) AddAddress(ctx context.Context, userID string, addr model.Address) (*model.Address, error) {
	if addr.Name == "" || addr.Phone == "" || addr.Street == "" {
		return nil, ErrIncompleteAddress
	}

	s.mu.Lock()
	_, err := s.live(userID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	created, err := s.client.CreateAddress(ctx, userID, addr)
	if err != nil {
		s.log.WithError(err).Warn("address api unavailable, keeping address session-local")
		addr.ID = uuid.NewString()
		created = &addr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.live(userID)
	if err != nil {
		return nil, err
	}
	if len(sess.Addresses) == 0 {
		created.IsDefault = true
	}
	sess.Addresses = append(sess.Addresses, *created)
	sess.SelectedAddressID = created.ID
	return created, nil
}

func (s *checkoutServiceImpl) SelectAddress(userID, addressID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.live(userID)
	if err != nil {
		return err
	}
	for _, addr := range sess.Addresses {
		if addr.ID == addressID {
			sess.SelectedAddressID = addressID
			return nil
		}
	}
	return ErrUnknownAddress
}

func (s *checkoutServiceImpl) SelectPayment(userID, method string) error {
	if !validPaymentMethod(method) {
		return ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.live(userID)
	if err != nil {
		return err
	}
	sess.PaymentMethod = method
	return nil
}

// Next advances from the address step to the payment step. Advancing
// without a selected address is rejected before any network call.
func (s *checkoutServiceImpl) Next(userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.live(userID)
	if err != nil {
		return nil, err
	}
	if sess.Step == StepAddress {
		if sess.SelectedAddressID == "" {
			return nil, ErrNoAddressSelected
		}
		sess.Step = StepPayment
	}
	return sess.snapshot(), nil
}

// Back returns from the payment step to the address step without
// discarding anything.
func (s *checkoutServiceImpl) Back(userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.live(userID)
	if err != nil {
		return nil, err
	}
	if sess.Step == StepPayment {
		sess.Step = StepAddress
	}
	return sess.snapshot(), nil
}

// Quote computes subtotal, shipping fee and total for a cart. Shipping
// is free above the threshold, otherwise the flat fee applies.
func (s *checkoutServiceImpl) Quote(cart *model.Cart) Quote {
	subtotal := Subtotal(cart)
	fee := s.flatShippingFee
	if subtotal.GreaterThan(s.freeShippingThreshold) {
		fee = decimal.Zero
	}
	return Quote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
	}
}

// Submit validates the collected selections, then creates the order and
// processes the payment in sequence. Payment is only attempted after
// order creation succeeds; on failure at either step the session stays
// where it is and nothing is retried.
func (s *checkoutServiceImpl) Submit(ctx context.Context, userID string) (*Confirmation, error) {
	s.mu.Lock()
	sess, err := s.live(userID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if sess.SelectedAddressID == "" {
		s.mu.Unlock()
		return nil, ErrNoAddressSelected
	}
	if sess.PaymentMethod == "" {
		s.mu.Unlock()
		return nil, ErrNoPaymentMethod
	}
	if !validPaymentMethod(sess.PaymentMethod) {
		s.mu.Unlock()
		return nil, ErrInvalidPaymentMethod
	}
	snap := sess.snapshot()
	s.mu.Unlock()

	quote := s.Quote(snap.Cart)
	total := money.NewAmount(quote.Total)

	order, err := s.client.CreateOrder(ctx, userID, dto.OrderRequest{
		Items:         snap.Cart.Items,
		AddressID:     snap.SelectedAddressID,
		PaymentMethod: snap.PaymentMethod,
		Total:         total,
		ShippingFee:   money.NewAmount(quote.ShippingFee),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	payment, err := s.client.ProcessPayment(ctx, order.ID, dto.PaymentRequest{
		OrderID: order.ID,
		Method:  snap.PaymentMethod,
		Amount:  total,
	})
	if err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}

	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"user":  userID,
		"order": order.ID,
		"total": total.StringFixed(2),
	}).Info("order placed")

	return &Confirmation{Order: order, Payment: payment, Total: total}, nil
}
