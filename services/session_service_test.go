package services

import (
	"testing"
	"time"

	"fhr-mart/models"
	"fhr-mart/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	svc := NewSessionService(3 * time.Second)
	return svc.Create()
}

func productByID(t *testing.T, id string) models.Product {
	t.Helper()
	p, err := repositories.NewCatalogRepository().GetProductByID(id)
	require.NoError(t, err)
	return p
}

func TestSessionServiceCreateAndGet(t *testing.T) {
	svc := NewSessionService(3 * time.Second)

	sess := svc.Create()
	require.NotEmpty(t, sess.ID)

	got, err := svc.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAddToCartKeepsOneEntryPerProduct(t *testing.T) {
	sess := newTestSession(t)
	headphones := productByID(t, "1")

	sess.AddToCart(headphones)
	sess.AddToCart(headphones)
	sess.AddToCart(headphones)

	items := sess.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestDecrementFloorsAtOne(t *testing.T) {
	sess := newTestSession(t)
	sess.AddToCart(productByID(t, "2"))

	require.NoError(t, sess.DecrementItem("2"))
	require.NoError(t, sess.DecrementItem("2"))

	items := sess.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartOpsOnMissingItem(t *testing.T) {
	sess := newTestSession(t)

	assert.ErrorIs(t, sess.IncrementItem("1"), ErrCartItemNotFound)
	assert.ErrorIs(t, sess.DecrementItem("1"), ErrCartItemNotFound)
	assert.ErrorIs(t, sess.RemoveItem("1"), ErrCartItemNotFound)
}

func TestCartInvariantsUnderMixedOps(t *testing.T) {
	sess := newTestSession(t)
	repo := repositories.NewCatalogRepository()

	for _, id := range []string{"1", "2", "1", "3", "2", "1"} {
		p, err := repo.GetProductByID(id)
		require.NoError(t, err)
		sess.AddToCart(p)
	}
	require.NoError(t, sess.IncrementItem("3"))
	require.NoError(t, sess.DecrementItem("2"))
	require.NoError(t, sess.DecrementItem("2"))
	require.NoError(t, sess.RemoveItem("1"))

	seen := map[string]bool{}
	for _, item := range sess.CartItems() {
		assert.False(t, seen[item.Product.ID], "duplicate entry for %s", item.Product.ID)
		seen[item.Product.ID] = true
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestCartTotalMatchesEntries(t *testing.T) {
	sess := newTestSession(t)
	headphones := productByID(t, "1")
	keyboard := productByID(t, "2")

	sess.AddToCart(headphones)
	sess.AddToCart(keyboard)
	sess.AddToCart(keyboard)

	want := headphones.Price + 2*keyboard.Price
	assert.Equal(t, want, sess.CartTotal())

	// Adding then removing a product restores the prior total.
	before := sess.CartTotal()
	sess.AddToCart(productByID(t, "6"))
	require.NoError(t, sess.RemoveItem("6"))
	assert.Equal(t, before, sess.CartTotal())
}

func TestCartScenarioEndToEnd(t *testing.T) {
	sess := newTestSession(t)
	headphones := productByID(t, "1")
	require.Equal(t, 14999, headphones.Price)

	assert.Empty(t, sess.CartItems())
	assert.Empty(t, sess.WishlistIDs())

	sess.AddToCart(headphones)
	items := sess.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 14999, sess.CartTotal())

	sess.AddToCart(headphones)
	items = sess.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 29998, sess.CartTotal())

	require.NoError(t, sess.DecrementItem("1"))
	items = sess.CartItems()
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 14999, sess.CartTotal())

	require.NoError(t, sess.RemoveItem("1"))
	assert.Empty(t, sess.CartItems())
	assert.Equal(t, 0, sess.CartTotal())
}

func TestClearCart(t *testing.T) {
	sess := newTestSession(t)
	sess.AddToCart(productByID(t, "1"))
	sess.AddToCart(productByID(t, "2"))

	sess.ClearCart()
	assert.Empty(t, sess.CartItems())
	assert.Equal(t, 0, sess.CartTotal())
}

func TestToggleWishlistIsItsOwnInverse(t *testing.T) {
	sess := newTestSession(t)

	assert.True(t, sess.ToggleWishlist("4"))
	assert.Equal(t, []string{"4"}, sess.WishlistIDs())

	assert.False(t, sess.ToggleWishlist("4"))
	assert.Empty(t, sess.WishlistIDs())
}

func TestWishlistHasNoDuplicates(t *testing.T) {
	sess := newTestSession(t)

	sess.ToggleWishlist("1")
	sess.ToggleWishlist("2")
	sess.ToggleWishlist("1")
	sess.ToggleWishlist("1")

	assert.Equal(t, []string{"1", "2"}, sess.WishlistIDs())
}

func TestAdvanceCheckoutGuardedOnEmptyCart(t *testing.T) {
	sess := newTestSession(t)

	step, err := sess.AdvanceCheckout()
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Equal(t, models.StepBag, step)
}

func TestCheckoutFlow(t *testing.T) {
	sess := newTestSession(t)
	sess.AddToCart(productByID(t, "1"))

	step, err := sess.AdvanceCheckout()
	require.NoError(t, err)
	assert.Equal(t, models.StepShipping, step)

	step, err = sess.AdvanceCheckout()
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, step)

	// Payment is the final step.
	step, err = sess.AdvanceCheckout()
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, step)

	require.NoError(t, sess.ConfirmOrder())
	assert.Empty(t, sess.CartItems())
	assert.Equal(t, 0, sess.CartTotal())

	step, cartOpen := sess.Checkout()
	assert.Equal(t, models.StepBag, step)
	assert.False(t, cartOpen)
}

func TestConfirmFromShippingStep(t *testing.T) {
	sess := newTestSession(t)
	sess.AddToCart(productByID(t, "2"))

	_, err := sess.AdvanceCheckout()
	require.NoError(t, err)

	require.NoError(t, sess.ConfirmOrder())
	assert.Empty(t, sess.CartItems())
}

func TestConfirmRequiresStartedCheckout(t *testing.T) {
	sess := newTestSession(t)

	assert.ErrorIs(t, sess.ConfirmOrder(), ErrCartEmpty)

	sess.AddToCart(productByID(t, "1"))
	assert.ErrorIs(t, sess.ConfirmOrder(), ErrCheckoutNotStarted)
}

func TestOpenCartDrawerResetsStep(t *testing.T) {
	sess := newTestSession(t)
	sess.AddToCart(productByID(t, "1"))

	_, err := sess.AdvanceCheckout()
	require.NoError(t, err)

	sess.OpenCartDrawer()
	step, cartOpen := sess.Checkout()
	assert.Equal(t, models.StepBag, step)
	assert.True(t, cartOpen)
}

func TestLoginStub(t *testing.T) {
	sess := newTestSession(t)

	_, ok := sess.CurrentUser()
	assert.False(t, ok)

	user := sess.Login()
	assert.Equal(t, "fida1", user.ID)
	assert.Equal(t, "Fida Rana", user.Name)
	assert.Equal(t, 500000, user.Balance)

	got, ok := sess.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestToastClearsAfterWindow(t *testing.T) {
	svc := NewSessionService(80 * time.Millisecond)
	sess := svc.Create()

	sess.ShowToast("added to bag")
	assert.Equal(t, "added to bag", sess.Toast())

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, "", sess.Toast())
}

func TestNewToastSupersedesPendingClear(t *testing.T) {
	svc := NewSessionService(100 * time.Millisecond)
	sess := svc.Create()

	sess.ShowToast("first")
	time.Sleep(60 * time.Millisecond)
	sess.ShowToast("second")

	// The first toast's timer would have fired by now; the second message must
	// survive its full window.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, "second", sess.Toast())

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "", sess.Toast())
}

func TestAdviceSingleInFlight(t *testing.T) {
	sess := newTestSession(t)

	require.True(t, sess.BeginAdvice())
	assert.False(t, sess.BeginAdvice())

	sess.EndAdvice()
	assert.True(t, sess.BeginAdvice())
}
