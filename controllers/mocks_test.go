package controllers_test

import (
	"context"
	"sync"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct {
	m     sync.RWMutex
	users []entity.User
	err   error
}

func (m *mockUserRepo) List(context.Context) ([]entity.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]entity.User{}, m.users...), nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) Insert(_ context.Context, user *entity.User) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	for i := range m.users {
		if m.users[i].Email == user.Email {
			return primitive.NilObjectID, repository.ErrAlreadyExists
		}
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return user.ID, nil
}

func (m *mockUserRepo) Promote(_ context.Context, id primitive.ObjectID) (int64, int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			if m.users[i].Role == entity.RoleAdmin {
				return 1, 0, nil
			}
			m.users[i].Role = entity.RoleAdmin
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockUserRepo) Count(context.Context) (int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) EnsureIndexes(context.Context) error { return nil }

type mockMenuRepo struct {
	m     sync.RWMutex
	items []entity.MenuItem
	err   error
}

func (m *mockMenuRepo) List(context.Context) ([]entity.MenuItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]entity.MenuItem{}, m.items...), nil
}

func (m *mockMenuRepo) Insert(_ context.Context, item *entity.MenuItem) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return item.ID, nil
}

func (m *mockMenuRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockMenuRepo) Count(context.Context) (int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	return int64(len(m.items)), nil
}

type mockCartRepo struct {
	m     sync.RWMutex
	items []entity.CartItem
	err   error
}

func (m *mockCartRepo) ListByEmail(_ context.Context, email string) ([]entity.CartItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []entity.CartItem{}
	for _, it := range m.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockCartRepo) Insert(_ context.Context, item *entity.CartItem) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return item.ID, nil
}

func (m *mockCartRepo) DeleteOwned(_ context.Context, id primitive.ObjectID, email string) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for i := range m.items {
		if m.items[i].ID == id && m.items[i].Email == email {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockCartRepo) DeleteManyOwned(_ context.Context, ids []primitive.ObjectID, email string) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	var deleted int64
	kept := m.items[:0]
	for _, it := range m.items {
		match := false
		for _, id := range ids {
			if it.ID == id && it.Email == email {
				match = true
				break
			}
		}
		if match {
			deleted++
		} else {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return deleted, nil
}

type mockPaymentRepo struct {
	m        sync.RWMutex
	payments []entity.Payment
	err      error
}

func (m *mockPaymentRepo) Insert(_ context.Context, payment *entity.Payment) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	payment.ID = primitive.NewObjectID()
	m.payments = append(m.payments, *payment)
	return payment.ID, nil
}

func (m *mockPaymentRepo) Count(context.Context) (int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	return int64(len(m.payments)), nil
}

func (m *mockPaymentRepo) TotalRevenue(context.Context) (float64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var total float64
	for _, p := range m.payments {
		total += p.Price
	}
	return total, nil
}

type mockReviewRepo struct {
	reviews []entity.Review
	err     error
}

func (m *mockReviewRepo) List(context.Context) ([]entity.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]entity.Review{}, m.reviews...), nil
}
