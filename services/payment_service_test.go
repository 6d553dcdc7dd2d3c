package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"github.com/AHMEDNABIB/react-reasturant-server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeIntents struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeIntents) Create(_ context.Context, amount int64, currency string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.amount = amount
	f.currency = currency
	return "cs_test_123", nil
}

type fakePaymentRepo struct {
	payments []entity.Payment
	err      error
}

func (f *fakePaymentRepo) Insert(_ context.Context, p *entity.Payment) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	p.ID = primitive.NewObjectID()
	f.payments = append(f.payments, *p)
	return p.ID, nil
}
func (f *fakePaymentRepo) Count(context.Context) (int64, error) {
	return int64(len(f.payments)), nil
}
func (f *fakePaymentRepo) TotalRevenue(context.Context) (float64, error) {
	var total float64
	for _, p := range f.payments {
		total += p.Price
	}
	return total, nil
}

type fakeCartRepo struct {
	items []entity.CartItem
	err   error
}

func (f *fakeCartRepo) ListByEmail(_ context.Context, email string) ([]entity.CartItem, error) {
	out := []entity.CartItem{}
	for _, it := range f.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakeCartRepo) Insert(_ context.Context, item *entity.CartItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	f.items = append(f.items, *item)
	return item.ID, nil
}
func (f *fakeCartRepo) DeleteOwned(_ context.Context, id primitive.ObjectID, email string) (int64, error) {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].Email == email {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
func (f *fakeCartRepo) DeleteManyOwned(_ context.Context, ids []primitive.ObjectID, email string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var deleted int64
	kept := f.items[:0]
	for _, it := range f.items {
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
	f.items = kept
	return deleted, nil
}

type passthroughTx struct {
	err   error
	calls int
}

func (t *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if t.err != nil {
		return t.err
	}
	return fn(ctx)
}

func newService(intents *fakeIntents, payments *fakePaymentRepo, carts *fakeCartRepo, tx *passthroughTx) *services.PaymentService {
	return services.NewPaymentService(intents, payments, carts, tx)
}

func TestCreateIntent_ConvertsToMinorUnits(t *testing.T) {
	intents := &fakeIntents{}
	svc := newService(intents, &fakePaymentRepo{}, &fakeCartRepo{}, &passthroughTx{})

	secret, err := svc.CreateIntent(context.Background(), 12.5)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", secret)
	assert.Equal(t, int64(1250), intents.amount)
	assert.Equal(t, "usd", intents.currency)

	// เศษสตางค์ตัดทิ้ง ไม่ปัดขึ้น
	_, err = svc.CreateIntent(context.Background(), 7.999)
	require.NoError(t, err)
	assert.Equal(t, int64(799), intents.amount)
}

func TestCreateIntent_RejectsNonPositiveAmount(t *testing.T) {
	svc := newService(&fakeIntents{}, &fakePaymentRepo{}, &fakeCartRepo{}, &passthroughTx{})

	_, err := svc.CreateIntent(context.Background(), 0)
	assert.ErrorIs(t, err, services.ErrInvalidAmount)

	_, err = svc.CreateIntent(context.Background(), 0.001)
	assert.ErrorIs(t, err, services.ErrInvalidAmount)
}

func TestRecord_InsertsPaymentAndPurgesCart(t *testing.T) {
	paid := primitive.NewObjectID()
	kept := primitive.NewObjectID()
	carts := &fakeCartRepo{items: []entity.CartItem{
		{ID: paid, Email: "bob@example.com", MenuItemID: "m1", Price: 8},
		{ID: kept, Email: "bob@example.com", MenuItemID: "m2", Price: 6},
	}}
	payments := &fakePaymentRepo{}
	tx := &passthroughTx{}
	svc := newService(&fakeIntents{}, payments, carts, tx)

	id, deleted, err := svc.Record(context.Background(),
		&entity.Payment{Email: "bob@example.com", Price: 8, TransactionID: "pi_1", CartItems: []string{paid.Hex()}},
		[]primitive.ObjectID{paid},
	)
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, 1, tx.calls)

	remaining, _ := carts.ListByEmail(context.Background(), "bob@example.com")
	require.Len(t, remaining, 1)
	assert.Equal(t, kept, remaining[0].ID)
	require.Len(t, payments.payments, 1)
}

func TestRecord_TransactionFailurePropagates(t *testing.T) {
	txErr := errors.New("transaction failed")
	payments := &fakePaymentRepo{}
	svc := newService(&fakeIntents{}, payments, &fakeCartRepo{}, &passthroughTx{err: txErr})

	_, _, err := svc.Record(context.Background(),
		&entity.Payment{Email: "bob@example.com", Price: 8},
		nil,
	)
	assert.ErrorIs(t, err, txErr)
	assert.Empty(t, payments.payments)
}

func TestRecord_PurgeFailureAborts(t *testing.T) {
	purgeErr := errors.New("purge failed")
	svc := newService(&fakeIntents{}, &fakePaymentRepo{}, &fakeCartRepo{err: purgeErr}, &passthroughTx{})

	_, _, err := svc.Record(context.Background(),
		&entity.Payment{Email: "bob@example.com", Price: 8},
		[]primitive.ObjectID{primitive.NewObjectID()},
	)
	assert.ErrorIs(t, err, purgeErr)
}
