package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"fhr-mart/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrCartItemNotFound   = errors.New("item not in cart")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCheckoutNotStarted = errors.New("checkout has not started")
	ErrAdviceInProgress   = errors.New("an advice request is already in progress")
)

// Session owns all mutable storefront state for one visitor: the cart ledger,
// the wishlist, the checkout step, the login stub and the current toast.
// Nothing here survives the process; there is no persistence layer.
type Session struct {
	ID string

	mu            sync.Mutex
	cart          []models.CartItem
	wishlist      map[string]struct{}
	user          *models.User
	step          models.CheckoutStep
	cartOpen      bool
	toast         string
	toastTimer    *time.Timer
	toastSeq      uint64
	toastDuration time.Duration
	adviceBusy    bool
}

type SessionService struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	toastDuration time.Duration
}

func NewSessionService(toastDuration time.Duration) *SessionService {
	return &SessionService{
		sessions:      make(map[string]*Session),
		toastDuration: toastDuration,
	}
}

func (s *SessionService) Create() *Session {
	sess := &Session{
		ID:            uuid.NewString(),
		cart:          []models.CartItem{},
		wishlist:      make(map[string]struct{}),
		step:          models.StepBag,
		toastDuration: s.toastDuration,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *SessionService) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// --- Cart ledger ---

// AddToCart increments the quantity when the product is already in the bag,
// otherwise appends a fresh entry with quantity 1. At most one entry ever
// exists per product id.
func (sess *Session) AddToCart(product models.Product) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	for i := range sess.cart {
		if sess.cart[i].Product.ID == product.ID {
			sess.cart[i].Quantity++
			return
		}
	}
	sess.cart = append(sess.cart, models.CartItem{Product: product, Quantity: 1})
}

func (sess *Session) IncrementItem(productID string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	for i := range sess.cart {
		if sess.cart[i].Product.ID == productID {
			sess.cart[i].Quantity++
			return nil
		}
	}
	return ErrCartItemNotFound
}

// DecrementItem lowers the quantity but never below 1. Dropping an item is
// RemoveItem's job, not a zero quantity.
func (sess *Session) DecrementItem(productID string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	for i := range sess.cart {
		if sess.cart[i].Product.ID == productID {
			if sess.cart[i].Quantity > 1 {
				sess.cart[i].Quantity--
			}
			return nil
		}
	}
	return ErrCartItemNotFound
}

func (sess *Session) RemoveItem(productID string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	for i := range sess.cart {
		if sess.cart[i].Product.ID == productID {
			sess.cart = append(sess.cart[:i], sess.cart[i+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}

// ClearCart empties the ledger. Checkout completion does this as part of
// ConfirmOrder.
func (sess *Session) ClearCart() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cart = []models.CartItem{}
}

func (sess *Session) CartItems() []models.CartItem {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := make([]models.CartItem, len(sess.cart))
	copy(out, sess.cart)
	return out
}

// CartTotal sums price times quantity over the ledger. Computed on demand,
// never cached.
func (sess *Session) CartTotal() int {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	total := 0
	for _, item := range sess.cart {
		total += item.Product.Price * item.Quantity
	}
	return total
}

func (sess *Session) CartCount() int {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return len(sess.cart)
}

// --- Wishlist ---

// ToggleWishlist flips membership for a product id and reports whether the id
// is in the wishlist afterwards. Toggling twice restores the original state.
func (sess *Session) ToggleWishlist(productID string) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, ok := sess.wishlist[productID]; ok {
		delete(sess.wishlist, productID)
		return false
	}
	sess.wishlist[productID] = struct{}{}
	return true
}

func (sess *Session) WishlistIDs() []string {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	ids := make([]string, 0, len(sess.wishlist))
	for id := range sess.wishlist {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// --- Checkout stepper ---

func (sess *Session) Checkout() (models.CheckoutStep, bool) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.step, sess.cartOpen
}

// OpenCartDrawer shows the cart panel and resets the stepper to bag.
func (sess *Session) OpenCartDrawer() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cartOpen = true
	sess.step = models.StepBag
}

// AdvanceCheckout moves bag -> shipping -> payment. Advancing is refused while
// the cart is empty; payment is the last step and stays put.
func (sess *Session) AdvanceCheckout() (models.CheckoutStep, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.cart) == 0 {
		return sess.step, ErrCartEmpty
	}

	sess.cartOpen = true
	switch sess.step {
	case models.StepBag:
		sess.step = models.StepShipping
	case models.StepShipping:
		sess.step = models.StepPayment
	}
	return sess.step, nil
}

// ConfirmOrder completes checkout from any step past bag: the ledger is
// cleared, the drawer closes and the stepper resets.
func (sess *Session) ConfirmOrder() error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.cart) == 0 {
		return ErrCartEmpty
	}
	if sess.step == models.StepBag {
		return ErrCheckoutNotStarted
	}

	sess.cart = []models.CartItem{}
	sess.cartOpen = false
	sess.step = models.StepBag
	return nil
}

// --- Login stub ---

// Login unconditionally assigns the demo user. No credentials, no logout.
func (sess *Session) Login() models.User {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	user := models.DemoUser()
	sess.user = &user
	return user
}

func (sess *Session) CurrentUser() (models.User, bool) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.user == nil {
		return models.User{}, false
	}
	return *sess.user, true
}

// --- Toast ---

// ShowToast replaces the visible toast and re-arms the auto-clear timer. The
// previous timer is stopped first, so a rapid series of toasts always keeps
// the newest message for its full window. The sequence number guards against
// a timer callback that already fired but has not run yet.
func (sess *Session) ShowToast(message string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.toastTimer != nil {
		sess.toastTimer.Stop()
	}

	sess.toast = message
	sess.toastSeq++
	seq := sess.toastSeq
	sess.toastTimer = time.AfterFunc(sess.toastDuration, func() {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		if sess.toastSeq == seq {
			sess.toast = ""
		}
	})
}

func (sess *Session) Toast() string {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.toast
}

// --- Advisory in-flight guard ---

// BeginAdvice claims the single advisory slot for this session. It reports
// false when a request is already outstanding.
func (sess *Session) BeginAdvice() bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.adviceBusy {
		return false
	}
	sess.adviceBusy = true
	return true
}

func (sess *Session) EndAdvice() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.adviceBusy = false
}
