package service

import (
	"context"
	"strings"
	"time"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
)

// RunCaptureReconcileBatch re-checks mirrored payments that have sat in the
// authorized state past the staleness window and captures the ones the
// provider still reports as authorized. Payments that moved on remotely are
// simply re-mirrored.
func (s *PaymentService) RunCaptureReconcileBatch(ctx context.Context) error {
	before := time.Now().UTC().Add(-s.paymentsCfg.ReconcileStaleAfter)

	stale, err := s.paymentRepo.ListStaleByStatus(ctx, entity.PaymentStatusAuthorized, before, s.batchSize())
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	var firstErr error
	keepFirstErr := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	captured := 0
	for _, payment := range stale {
		remote, err := s.gateway.FetchPayment(ctx, payment.ID)
		if err != nil {
			s.logger.WithError(err).WithField("payment_id", payment.ID).Warn("Failed to fetch stale payment")
			keepFirstErr(err)
			continue
		}

		if strings.EqualFold(remote.Status, entity.PaymentStatusAuthorized) {
			result, err := s.gateway.CapturePayment(ctx, payment.ID, remote.Amount, remote.Currency)
			if err != nil {
				s.logger.WithError(err).WithField("payment_id", payment.ID).Warn("Failed to capture stale payment")
				keepFirstErr(err)
				continue
			}
			remote = result
			captured++
		}

		now := time.Now().UTC()
		if err := s.paymentRepo.Upsert(ctx, paymentFromRemote(remote, now)); err != nil {
			s.logger.WithError(err).WithField("payment_id", payment.ID).Warn("Failed to mirror reconciled payment")
			keepFirstErr(err)
		}
	}

	s.logger.WithField("checked", len(stale)).WithField("captured", captured).Info("Capture reconcile batch finished")
	return firstErr
}
