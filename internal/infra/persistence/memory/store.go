// Package memory is a process-local persistence backend. It backs the memory storage driver used for
// local development and end-to-end tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"greencart/config"
	"greencart/internal/domain/entity"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store holds users, their addresses and the seeded catalog.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	users     map[uuid.UUID]*entity.User
	byEmail   map[string]uuid.UUID
	addresses map[uuid.UUID][]*entity.Address
	products  []entity.Product
	now       func() time.Time
}

// NewStore builds an empty store with the given catalog.
func NewStore(products []entity.Product) *Store {
	return &Store{
		users:     make(map[uuid.UUID]*entity.User),
		byEmail:   make(map[string]uuid.UUID),
		addresses: make(map[uuid.UUID][]*entity.Address),
		products:  slices.Clone(products),
		now:       time.Now,
	}
}

// NewStoreFromConfig seeds the catalog from the configuration.
func NewStoreFromConfig(cfg *config.Config) *Store {
	products := make([]entity.Product, 0, len(cfg.Catalog))
	for _, p := range cfg.Catalog {
		products = append(products, entity.Product{
			ID:         p.ID,
			Name:       p.Name,
			Category:   p.Category,
			Price:      p.Price,
			OfferPrice: p.OfferPrice,
			Images:     slices.Clone(p.Images),
			InStock:    p.InStock,
		})
	}

	return NewStore(products)
}

// Users returns the user repository view of the store.
func (s *Store) Users() repository.UserRepository { return userRepository{s: s} }

// Addresses returns the address repository view of the store.
func (s *Store) Addresses() repository.AddressRepository { return addressRepository{s: s} }

// Products returns the read-only catalog view of the store.
func (s *Store) Products() repository.ProductRepository { return productRepository{s} }

// TransactionManager returns a manager that serializes transactions and restores the previous state
// when the callback fails.
func (s *Store) TransactionManager() repository.TransactionManager { return txManager{s} }

// Repositories handed out inside a transaction set inTx; writes made outside one also take txMu so a
// rollback never discards them.
type userRepository struct {
	s    *Store
	inTx bool
}

func (r userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return r.s.hydrate(user), nil
}

func (r userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.byEmail[email]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return r.s.hydrate(r.s.users[id]), nil
}

func (r userRepository) Create(_ context.Context, user *entity.User) error {
	defer r.s.lockWrite(r.inTx)()

	key := user.Email
	if _, exists := r.s.byEmail[key]; exists {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate user id")
		}
		user.ID = id
	}
	now := r.s.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	stored.Addresses = nil
	stored.CartItems = user.CartItems.Clone()
	r.s.users[user.ID] = &stored
	r.s.byEmail[key] = user.ID

	return nil
}

func (r userRepository) UpdateCart(_ context.Context, id uuid.UUID, cart entity.Cart) error {
	defer r.s.lockWrite(r.inTx)()

	user, ok := r.s.users[id]
	if !ok {
		return errors.WithStack(repository.ErrUserNotFound)
	}
	user.CartItems = entity.NewCart(cart)
	user.UpdatedAt = r.s.now()

	return nil
}

type addressRepository struct {
	s    *Store
	inTx bool
}

func (r addressRepository) AppendAddress(_ context.Context, address *entity.Address) error {
	defer r.s.lockWrite(r.inTx)()

	if _, ok := r.s.users[address.UserID]; !ok {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	if address.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate address id")
		}
		address.ID = id
	}
	address.CreatedAt = r.s.now()

	stored := *address
	r.s.addresses[address.UserID] = append(r.s.addresses[address.UserID], &stored)

	return nil
}

func (r addressRepository) FindAddressesByUser(_ context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.copyAddresses(userID), nil
}

type productRepository struct{ s *Store }

func (r productRepository) ListProducts(_ context.Context) ([]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return slices.Clone(r.s.products), nil
}

type txManager struct{ s *Store }

type repositoryFactory struct{ s *Store }

func (f repositoryFactory) UserRepo() repository.UserRepository {
	return userRepository{s: f.s, inTx: true}
}

func (f repositoryFactory) AddressRepo() repository.AddressRepository {
	return addressRepository{s: f.s, inTx: true}
}

func (m txManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	snapshot := m.s.snapshot()
	if err := fn(repositoryFactory{m.s}); err != nil {
		m.s.restore(snapshot)

		return err
	}

	return nil
}

// lockWrite acquires the write locks in txMu, mu order and returns the matching unlock.
func (s *Store) lockWrite(inTx bool) func() {
	if !inTx {
		s.txMu.Lock()
	}
	s.mu.Lock()

	return func() {
		s.mu.Unlock()
		if !inTx {
			s.txMu.Unlock()
		}
	}
}

type state struct {
	users     map[uuid.UUID]*entity.User
	byEmail   map[string]uuid.UUID
	addresses map[uuid.UUID][]*entity.Address
}

func (s *Store) snapshot() state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(map[uuid.UUID]*entity.User, len(s.users))
	for id, u := range s.users {
		copied := *u
		copied.CartItems = u.CartItems.Clone()
		users[id] = &copied
	}
	addresses := make(map[uuid.UUID][]*entity.Address, len(s.addresses))
	for id, list := range s.addresses {
		addresses[id] = slices.Clone(list)
	}

	return state{users: users, byEmail: maps.Clone(s.byEmail), addresses: addresses}
}

func (s *Store) restore(st state) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = st.users
	s.byEmail = st.byEmail
	s.addresses = st.addresses
}

// hydrate returns a detached copy of the user with its address book attached. Callers hold mu.
func (s *Store) hydrate(user *entity.User) *entity.User {
	copied := *user
	copied.CartItems = user.CartItems.Clone()
	copied.Addresses = s.copyAddresses(user.ID)

	return &copied
}

func (s *Store) copyAddresses(userID uuid.UUID) []*entity.Address {
	list := s.addresses[userID]
	out := make([]*entity.Address, 0, len(list))
	for _, a := range list {
		copied := *a
		out = append(out, &copied)
	}

	return out
}
