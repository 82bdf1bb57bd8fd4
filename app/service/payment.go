package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
	"github.com/apexneural-PraveenJogi/razorpay/app/factory"
	"github.com/apexneural-PraveenJogi/razorpay/app/razorpay"
	"github.com/apexneural-PraveenJogi/razorpay/config"
)

type paymentGateway interface {
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
	CapturePayment(ctx context.Context, paymentID string, amount int64, currency string) (*razorpay.Payment, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}

type paymentRepository interface {
	Upsert(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id string) (*entity.Payment, error)
	List(ctx context.Context, limit, offset int32) ([]*entity.Payment, error)
	ListStaleByStatus(ctx context.Context, status string, before time.Time, limit int32) ([]*entity.Payment, error)
}

type PaymentService struct {
	gateway     paymentGateway
	paymentRepo paymentRepository
	paymentsCfg config.PaymentsConfig
	logger      logrus.FieldLogger
}

func NewPaymentService(gateway paymentGateway, paymentRepo paymentRepository, paymentsCfg config.PaymentsConfig) *PaymentService {
	return &PaymentService{
		gateway:     gateway,
		paymentRepo: paymentRepo,
		paymentsCfg: paymentsCfg,
		logger:      factory.NewModuleLogger("payments-service"),
	}
}

type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type VerifyPaymentResult struct {
	Verified  bool
	OrderID   string
	PaymentID string
	Status    string
	Message   string
}

// VerifyPayment recomputes the checkout signature and, when it matches,
// mirrors the payment and captures it if the provider still reports it as
// authorized. A failed capture after successful verification is logged and
// left to the reconcile job; the verification result is unaffected.
func (s *PaymentService) VerifyPayment(ctx context.Context, input VerifyPaymentInput) (*VerifyPaymentResult, error) {
	orderID := strings.TrimSpace(input.OrderID)
	paymentID := strings.TrimSpace(input.PaymentID)
	signature := strings.TrimSpace(input.Signature)
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, ErrInvalidRequest
	}

	result := &VerifyPaymentResult{
		OrderID:   orderID,
		PaymentID: paymentID,
	}

	if !s.gateway.VerifyPaymentSignature(orderID, paymentID, signature) {
		result.Message = "payment signature verification failed"
		return result, nil
	}

	remote, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(remote.Status, entity.PaymentStatusAuthorized) {
		captured, err := s.gateway.CapturePayment(ctx, paymentID, remote.Amount, remote.Currency)
		if err != nil {
			s.logger.WithError(err).WithField("payment_id", paymentID).Warn("Failed to capture verified payment")
		} else {
			remote = captured
		}
	}

	now := time.Now().UTC()
	if err := s.paymentRepo.Upsert(ctx, paymentFromRemote(remote, now)); err != nil {
		s.logger.WithError(err).WithField("payment_id", paymentID).Warn("Failed to mirror payment")
	}

	result.Verified = true
	result.Status = strings.ToLower(remote.Status)
	result.Message = "payment signature verified successfully"
	return result, nil
}

type CapturePaymentInput struct {
	PaymentID string
	// Amount is in minor units; zero captures the full authorized amount.
	Amount int64
}

func (s *PaymentService) CapturePayment(ctx context.Context, input CapturePaymentInput) (*razorpay.Payment, error) {
	paymentID := strings.TrimSpace(input.PaymentID)
	if paymentID == "" {
		return nil, ErrInvalidRequest
	}

	remote, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(remote.Status)
	if status == entity.PaymentStatusCaptured {
		// Idempotent: the money already settled.
		return remote, nil
	}
	if status != entity.PaymentStatusAuthorized {
		return nil, fmt.Errorf("%w: payment cannot be captured in status %q", ErrInvalidStatus, status)
	}

	amount := input.Amount
	if amount <= 0 {
		amount = remote.Amount
	}

	captured, err := s.gateway.CapturePayment(ctx, paymentID, amount, remote.Currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.paymentRepo.Upsert(ctx, paymentFromRemote(captured, now)); err != nil {
		s.logger.WithError(err).WithField("payment_id", paymentID).Warn("Failed to mirror captured payment")
	}

	return captured, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error) {
	if strings.TrimSpace(paymentID) == "" {
		return nil, ErrInvalidRequest
	}
	return s.gateway.FetchPayment(ctx, paymentID)
}

func (s *PaymentService) GetPaymentFromDB(ctx context.Context, paymentID string) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrNotFound
	}
	return payment, nil
}

func (s *PaymentService) ListPaymentsFromDB(ctx context.Context, limit, offset int32) ([]*entity.Payment, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.paymentRepo.List(ctx, limit, offset)
}

func (s *PaymentService) batchSize() int32 {
	if s.paymentsCfg.JobBatchSize > 0 {
		return s.paymentsCfg.JobBatchSize
	}
	return defaultListLimit
}
