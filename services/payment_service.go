package services

import (
	"context"
	"errors"

	"github.com/AHMEDNABIB/react-reasturant-server/entity"
	"github.com/AHMEDNABIB/react-reasturant-server/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// PaymentService จัดการ checkout: สร้าง intent กับ Stripe และบันทึก payment
// พร้อมเคลียร์ตะกร้าใน transaction เดียว
type PaymentService struct {
	intents  PaymentIntents
	payments repository.PaymentRepository
	carts    repository.CartRepository
	tx       repository.TxRunner
}

func NewPaymentService(intents PaymentIntents, payments repository.PaymentRepository, carts repository.CartRepository, tx repository.TxRunner) *PaymentService {
	return &PaymentService{
		intents:  intents,
		payments: payments,
		carts:    carts,
		tx:       tx,
	}
}

// CreateIntent แปลงราคาเป็นหน่วยย่อย (x100 ปัดเศษทิ้ง) แล้วขอ client secret
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	return s.intents.Create(ctx, amount, "usd")
}

// Record เขียน payment แล้วลบ cart item ตาม id ที่จ่ายไปแล้ว
// สองขั้นอยู่ใน transaction เดียว: crash กลางทางไม่ทิ้ง state ค้าง
func (s *PaymentService) Record(ctx context.Context, payment *entity.Payment, cartIDs []primitive.ObjectID) (primitive.ObjectID, int64, error) {
	var insertedID primitive.ObjectID
	var deleted int64

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		id, err := s.payments.Insert(ctx, payment)
		if err != nil {
			return err
		}
		insertedID = id

		n, err := s.carts.DeleteManyOwned(ctx, cartIDs, payment.Email)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, 0, err
	}
	return insertedID, deleted, nil
}
