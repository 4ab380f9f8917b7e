package store_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"testing"

	"greencart/internal/apptest"
	"greencart/internal/client/api"
	"greencart/internal/client/store"
	"greencart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentNotifier struct{ errors []string }

func (n *silentNotifier) Success(string) {}

func (n *silentNotifier) Error(message string) { n.errors = append(n.errors, message) }

func newStore(t *testing.T, app *apptest.App, opts ...api.Option) (*store.Store, *silentNotifier) {
	t.Helper()

	client, err := api.New(app.Server.URL, opts...)
	require.NoError(t, err)

	notifier := &silentNotifier{}
	s := store.New(client, notifier)
	t.Cleanup(s.Close)

	return s, notifier
}

func TestStore_EndToEndSession(t *testing.T) {
	ctx := context.Background()
	app := apptest.New(t)

	registration, _ := newStore(t, app)
	require.True(t, registration.Register(ctx, "Alice", "alice@example.com", "pw-alice"))
	registration.Close()

	// Both stores share one cookie jar, like two page loads in the same browser.
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	browser := api.WithHTTPClient(&http.Client{Jar: jar})

	s, notifier := newStore(t, app, browser)
	s.Init(ctx)
	assert.Nil(t, s.Snapshot().User)
	assert.Len(t, s.Snapshot().Products, 2)

	require.True(t, s.Login(ctx, "alice@example.com", "pw-alice"))
	s.Add("p1")
	s.Add("p1")
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 39.99, s.Amount())

	// Closing drains the push, so the server now holds the cart.
	s.Close()

	reloaded, _ := newStore(t, app, browser)
	reloaded.Init(ctx)
	require.NotNil(t, reloaded.Snapshot().User)
	assert.Equal(t, "alice@example.com", reloaded.Snapshot().User.Email)
	assert.Equal(t, entity.Cart{"p1": 2}, reloaded.Snapshot().Cart)

	require.True(t, reloaded.Logout(ctx))
	reloaded.Init(ctx)
	assert.Nil(t, reloaded.Snapshot().User)
	assert.Empty(t, reloaded.Snapshot().Cart)
	assert.Empty(t, notifier.errors)
}

func TestStore_EndToEndNoPushWhileSignedOut(t *testing.T) {
	ctx := context.Background()
	app := apptest.New(t)

	s, notifier := newStore(t, app)
	s.Init(ctx)
	s.Add("p1")
	s.Close()

	assert.Equal(t, 1, s.Count())
	assert.Empty(t, notifier.errors)
	assert.Equal(t, float64(0), counterValue(t, app, "greencart_cart_updates_total"))
}

func TestStore_EndToEndSeller(t *testing.T) {
	ctx := context.Background()
	app := apptest.New(t)

	s, notifier := newStore(t, app)
	assert.False(t, s.SellerLogin(ctx, apptest.SellerEmail, "wrong"))
	assert.Equal(t, []string{"Invalid Credentials"}, notifier.errors)

	require.True(t, s.SellerLogin(ctx, apptest.SellerEmail, apptest.SellerPassword))
	s.Init(ctx)
	assert.True(t, s.Snapshot().IsSeller)
}

func counterValue(t *testing.T, app *apptest.App, name string) float64 {
	t.Helper()

	families, err := app.Registry.Gather()
	require.NoError(t, err)

	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}

	return total
}
