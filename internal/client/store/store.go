// Package store holds the client-side session, cart and catalog state and keeps the server cart in sync.
package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"greencart/internal/client/api"
	"greencart/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

// Confirmation messages shown after cart actions.
const (
	MessageAdded   = "Added To Cart"
	MessageUpdated = "Cart Updated"
	MessageRemoved = "Remove from cart"
)

// API is the subset of the storefront client the store drives.
type API interface {
	Register(ctx context.Context, name, email, password string) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.User, error)
	IsAuth(ctx context.Context) (*api.User, error)
	Logout(ctx context.Context) error
	AddAddress(ctx context.Context, address api.Address) ([]api.Address, error)
	GetAddresses(ctx context.Context) ([]api.Address, error)
	SellerLogin(ctx context.Context, email, password string) error
	SellerIsAuth(ctx context.Context) error
	ListProducts(ctx context.Context) ([]api.Product, error)
	UpdateCart(ctx context.Context, cartItems map[string]int) error
}

// Snapshot is a detached copy of the store state handed to subscribers.
type Snapshot struct {
	User     *api.User
	IsSeller bool
	Cart     entity.Cart
	Products entity.Catalog
}

// Store is the single source of client state. Actions are serialized; subscribers are
// notified after every action with a fresh snapshot.
type Store struct {
	mu       sync.Mutex
	user     *api.User
	isSeller bool
	cart     entity.Cart
	products entity.Catalog

	subMu       sync.Mutex
	nextSubID   int
	subscribers map[int]func(Snapshot)

	client   API
	notifier Notifier
	pusher   *pushQueue
}

// New creates an empty store. Close must be called to drain pending cart pushes.
func New(client API, notifier Notifier) *Store {
	s := &Store{
		cart:        entity.Cart{},
		subscribers: make(map[int]func(Snapshot)),
		client:      client,
		notifier:    notifier,
	}
	s.pusher = newPushQueue(
		func(ctx context.Context, cart entity.Cart) error {
			return client.UpdateCart(ctx, cart)
		},
		func(err error) {
			notifier.Error(err.Error())
		},
	)

	return s
}

// Close waits for the last queued cart push and stops the push worker.
func (s *Store) Close() {
	s.pusher.close()
}

// Subscribe registers fn for state changes and returns a function that removes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Init loads the user session, the seller flag and the catalog concurrently.
// Each load fails independently. A cart hydrated from the session replaces the local cart
// and is not pushed back to the server; only later cart actions trigger a push.
func (s *Store) Init(ctx context.Context) {
	var g errgroup.Group

	g.Go(func() error {
		s.fetchUser(ctx)

		return nil
	})
	g.Go(func() error {
		s.fetchSeller(ctx)

		return nil
	})
	g.Go(func() error {
		s.fetchProducts(ctx)

		return nil
	})

	_ = g.Wait()
	s.publish()
}

func (s *Store) fetchUser(ctx context.Context) {
	user, err := s.client.IsAuth(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.user = nil
		s.cart = entity.Cart{}

		return
	}
	s.user = user
	s.cart = entity.NewCart(user.CartItems)
}

func (s *Store) fetchSeller(ctx context.Context) {
	err := s.client.SellerIsAuth(ctx)

	s.mu.Lock()
	s.isSeller = err == nil
	s.mu.Unlock()
}

func (s *Store) fetchProducts(ctx context.Context) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		s.notifier.Error(err.Error())

		return
	}

	s.mu.Lock()
	s.products = toCatalog(products)
	s.mu.Unlock()
}

// Add puts one more unit of the product in the cart.
func (s *Store) Add(productID string) {
	s.mutateCart(func(cart entity.Cart) bool {
		cart.Add(productID)

		return true
	}, MessageAdded)
}

// SetQuantity sets the quantity of the product. A non-positive quantity removes it.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mutateCart(func(cart entity.Cart) bool {
		cart.SetQuantity(productID, quantity)

		return true
	}, MessageUpdated)
}

// Remove takes one unit of the product out of the cart. Absent products are ignored silently.
func (s *Store) Remove(productID string) {
	s.mutateCart(func(cart entity.Cart) bool {
		return cart.Remove(productID)
	}, MessageRemoved)
}

// SetCart replaces the whole cart.
func (s *Store) SetCart(items map[string]int) {
	s.mutateCart(func(cart entity.Cart) bool {
		clear(cart)
		maps.Copy(cart, entity.NewCart(items))

		return true
	}, "")
}

// Count returns the number of units in the cart.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Count()
}

// Amount returns the cart total at offer prices, floored to cents.
func (s *Store) Amount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Amount(s.products)
}

// mutateCart applies fn and, when it changed the cart, confirms and schedules a push
// for signed-in users.
func (s *Store) mutateCart(fn func(cart entity.Cart) bool, confirmation string) {
	s.mu.Lock()
	changed := fn(s.cart)
	var snapshot entity.Cart
	push := changed && s.user != nil
	if push {
		snapshot = s.cart.Clone()
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	if push {
		s.pusher.enqueue(snapshot)
	}
	if confirmation != "" {
		s.notifier.Success(confirmation)
	}
	s.publish()
}

// Register creates an account and signs it in. The local cart is kept.
func (s *Store) Register(ctx context.Context, name, email, password string) bool {
	user, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		s.notifier.Error(err.Error())

		return false
	}
	s.SetUser(user)

	return true
}

// Login signs the user in. The local cart is kept and pushed on the next cart action.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.notifier.Error(err.Error())

		return false
	}
	s.SetUser(user)

	return true
}

// Logout ends the user session.
func (s *Store) Logout(ctx context.Context) bool {
	if err := s.client.Logout(ctx); err != nil {
		s.notifier.Error(err.Error())

		return false
	}
	s.SetUser(nil)
	s.notifier.Success("Logged Out")

	return true
}

// SellerLogin opens a seller session and raises the seller flag.
func (s *Store) SellerLogin(ctx context.Context, email, password string) bool {
	if err := s.client.SellerLogin(ctx, email, password); err != nil {
		s.notifier.Error(err.Error())

		return false
	}

	s.mu.Lock()
	s.isSeller = true
	s.mu.Unlock()
	s.publish()

	return true
}

// SetUser replaces the signed-in user. nil signs the user out locally.
func (s *Store) SetUser(user *api.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.publish()
}

// AddAddress stores a new address for the signed-in user.
func (s *Store) AddAddress(ctx context.Context, address api.Address) bool {
	addresses, err := s.client.AddAddress(ctx, address)
	if err != nil {
		s.notifier.Error(err.Error())

		return false
	}

	s.mu.Lock()
	if s.user != nil {
		updated := *s.user
		updated.Addresses = addresses
		s.user = &updated
	}
	s.mu.Unlock()

	s.notifier.Success("Address added successfully")
	s.publish()

	return true
}

// Addresses fetches the address book of the signed-in user. Failures are notified and yield nil.
func (s *Store) Addresses(ctx context.Context) []api.Address {
	addresses, err := s.client.GetAddresses(ctx)
	if err != nil {
		s.notifier.Error(err.Error())

		return nil
	}

	return addresses
}

func (s *Store) snapshotLocked() Snapshot {
	var user *api.User
	if s.user != nil {
		copied := *s.user
		copied.CartItems = maps.Clone(s.user.CartItems)
		copied.Addresses = slices.Clone(s.user.Addresses)
		user = &copied
	}

	return Snapshot{
		User:     user,
		IsSeller: s.isSeller,
		Cart:     s.cart.Clone(),
		Products: slices.Clone(s.products),
	}
}

func (s *Store) publish() {
	snapshot := s.Snapshot()

	s.subMu.Lock()
	subscribers := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

func toCatalog(products []api.Product) entity.Catalog {
	catalog := make(entity.Catalog, 0, len(products))
	for _, p := range products {
		catalog = append(catalog, entity.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			OfferPrice:  p.OfferPrice,
			Images:      p.Images,
			InStock:     p.InStock,
		})
	}

	return catalog
}
