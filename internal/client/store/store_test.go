package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"greencart/internal/client/api"
	"greencart/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.successes...)
}

func (n *recordingNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.errors...)
}

// fakeAPI serves canned answers and records cart pushes.
type fakeAPI struct {
	mu          sync.Mutex
	user        *api.User
	userErr     error
	sellerErr   error
	products    []api.Product
	productsErr error
	pushErr     error
	pushes      []map[string]int
	pushGate    chan struct{}
}

func (f *fakeAPI) Register(_ context.Context, name, email, _ string) (*api.User, error) {
	return &api.User{Name: name, Email: email}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, _ string) (*api.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}

	return &api.User{Email: email}, nil
}

func (f *fakeAPI) IsAuth(context.Context) (*api.User, error) {
	return f.user, f.userErr
}

func (f *fakeAPI) Logout(context.Context) error { return nil }

func (f *fakeAPI) AddAddress(_ context.Context, address api.Address) ([]api.Address, error) {
	return []api.Address{address}, nil
}

func (f *fakeAPI) GetAddresses(context.Context) ([]api.Address, error) {
	return nil, errors.New("offline")
}

func (f *fakeAPI) SellerLogin(context.Context, string, string) error { return f.sellerErr }

func (f *fakeAPI) SellerIsAuth(context.Context) error { return f.sellerErr }

func (f *fakeAPI) ListProducts(context.Context) ([]api.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeAPI) UpdateCart(_ context.Context, cartItems map[string]int) error {
	if f.pushGate != nil {
		<-f.pushGate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes = append(f.pushes, cartItems)

	return f.pushErr
}

func (f *fakeAPI) Pushes() []map[string]int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]map[string]int(nil), f.pushes...)
}

func newTestStore(t *testing.T, client *fakeAPI) (*Store, *recordingNotifier) {
	t.Helper()

	notifier := &recordingNotifier{}
	s := New(client, notifier)
	t.Cleanup(s.Close)

	return s, notifier
}

func TestStore_CartActions(t *testing.T) {
	s, notifier := newTestStore(t, &fakeAPI{})

	s.Add("p1")
	s.Add("p1")
	s.Add("p2")
	assert.Equal(t, 3, s.Count())

	s.Remove("p2")
	s.Remove("missing")
	assert.Equal(t, entity.Cart{"p1": 2}, s.Snapshot().Cart)

	s.SetQuantity("p1", 5)
	assert.Equal(t, 5, s.Count())

	s.SetQuantity("p1", 0)
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Snapshot().Cart)

	assert.Equal(t, []string{
		MessageAdded, MessageAdded, MessageAdded,
		MessageRemoved,
		MessageUpdated, MessageUpdated,
	}, notifier.Successes())
}

func TestStore_AddThenRemoveIsIdentity(t *testing.T) {
	s, _ := newTestStore(t, &fakeAPI{})

	for range 4 {
		s.Add("p1")
	}
	for range 4 {
		s.Remove("p1")
	}

	assert.Empty(t, s.Snapshot().Cart)
}

func TestStore_Amount(t *testing.T) {
	client := &fakeAPI{
		userErr:  errors.New("Not Authorized"),
		products: []api.Product{{ID: "p1", OfferPrice: 19.999}, {ID: "p2", OfferPrice: 5}},
	}
	s, _ := newTestStore(t, client)
	s.Init(context.Background())

	s.SetQuantity("p1", 3)
	s.Add("ghost")

	assert.Equal(t, 59.99, s.Amount())
}

func TestStore_Init(t *testing.T) {
	t.Run("hydrates user and cart", func(t *testing.T) {
		client := &fakeAPI{
			user:     &api.User{Email: "alice@example.com", CartItems: map[string]int{"p1": 2, "bad": 0}},
			products: []api.Product{{ID: "p1", OfferPrice: 10}},
		}
		s, notifier := newTestStore(t, client)

		s.Init(context.Background())

		snap := s.Snapshot()
		require.NotNil(t, snap.User)
		assert.Equal(t, "alice@example.com", snap.User.Email)
		assert.Equal(t, entity.Cart{"p1": 2}, snap.Cart)
		assert.True(t, snap.IsSeller)
		assert.Len(t, snap.Products, 1)
		assert.Empty(t, notifier.Errors())

		s.Close()
		assert.Empty(t, client.Pushes())
	})

	t.Run("partial failures stay independent", func(t *testing.T) {
		client := &fakeAPI{
			userErr:     errors.New("Not Authorized"),
			sellerErr:   errors.New("Not Authorized"),
			productsErr: errors.New("catalog unavailable"),
		}
		s, notifier := newTestStore(t, client)
		s.Add("p1")

		s.Init(context.Background())

		snap := s.Snapshot()
		assert.Nil(t, snap.User)
		assert.False(t, snap.IsSeller)
		assert.Empty(t, snap.Cart)
		assert.Equal(t, []string{"catalog unavailable"}, notifier.Errors())
	})
}

func TestStore_NoPushWithoutUser(t *testing.T) {
	client := &fakeAPI{}
	s, _ := newTestStore(t, client)

	s.Add("p1")
	s.SetQuantity("p1", 3)
	s.Remove("p1")
	s.Close()

	assert.Empty(t, client.Pushes())
}

func TestStore_PushesSnapshotsForSignedInUser(t *testing.T) {
	client := &fakeAPI{}
	s, _ := newTestStore(t, client)
	s.SetUser(&api.User{Email: "alice@example.com"})

	s.Add("p1")
	s.Close()

	assert.Equal(t, []map[string]int{{"p1": 1}}, client.Pushes())
}

func TestStore_PushesCoalesceToLatest(t *testing.T) {
	client := &fakeAPI{pushGate: make(chan struct{})}
	s, _ := newTestStore(t, client)
	s.SetUser(&api.User{Email: "alice@example.com"})

	s.Add("p1")
	// Wait for the worker to pick up the first snapshot and block on the gate.
	require.Eventually(t, func() bool {
		s.pusher.mu.Lock()
		defer s.pusher.mu.Unlock()

		return !s.pusher.queued
	}, time.Second, time.Millisecond)

	s.Add("p1")
	s.Add("p1")
	s.Add("p2")

	close(client.pushGate)
	s.Close()

	assert.Equal(t, []map[string]int{
		{"p1": 1},
		{"p1": 3, "p2": 1},
	}, client.Pushes())
}

func TestStore_PushFailureKeepsLocalState(t *testing.T) {
	client := &fakeAPI{pushErr: errors.New("User not found")}
	s, notifier := newTestStore(t, client)
	s.SetUser(&api.User{Email: "alice@example.com"})

	s.Add("p1")
	s.Close()

	assert.Equal(t, entity.Cart{"p1": 1}, s.Snapshot().Cart)
	assert.Equal(t, []string{"User not found"}, notifier.Errors())
}

func TestStore_SubscribeAndSessionActions(t *testing.T) {
	client := &fakeAPI{}
	s, notifier := newTestStore(t, client)

	var mu sync.Mutex
	var seen []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, snap)
	})

	require.True(t, s.Login(context.Background(), "alice@example.com", "pw"))
	require.True(t, s.AddAddress(context.Background(), api.Address{City: "Oxford"}))
	require.True(t, s.SellerLogin(context.Background(), "seller@example.com", "pw"))
	unsubscribe()
	require.True(t, s.Logout(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 3)
	assert.Equal(t, "alice@example.com", seen[0].User.Email)
	assert.Equal(t, "Oxford", seen[1].User.Addresses[0].City)
	assert.True(t, seen[2].IsSeller)

	assert.Nil(t, s.Snapshot().User)
	assert.Nil(t, s.Addresses(context.Background()))
	assert.Equal(t, []string{"offline"}, notifier.Errors())
}

func TestStore_LoginFailureIsNotified(t *testing.T) {
	client := &fakeAPI{userErr: errors.New("Invalid email or password")}
	s, notifier := newTestStore(t, client)

	assert.False(t, s.Login(context.Background(), "alice@example.com", "bad"))
	assert.Nil(t, s.Snapshot().User)
	assert.Equal(t, []string{"Invalid email or password"}, notifier.Errors())
}
