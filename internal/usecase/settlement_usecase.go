package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInvoiceID   = errors.New("invalid invoice_id")
	ErrInvalidPayerID     = errors.New("invalid payer_id")
	ErrNoPaymentMethod    = errors.New("no payment method")
	ErrNoTransfers        = errors.New("no payout destination")
	ErrInvoiceFullyPaid   = errors.New("invoice already fully paid")
	ErrInvoiceHasNoPayers = errors.New("invoice has no payers")
	ErrPaymentInProgress  = errors.New("payment already in progress")
)

type SubmitPaymentCommand struct {
	InvoiceID         string
	PayerID           string
	PaymentApproverID string
	// PaymentSource is a one-off tokenized source. Empty charges the card on file.
	PaymentSource string
}

type SettlementSettings struct {
	Currency              string
	ApplicationFeePercent decimal.Decimal
	LockTTL               time.Duration
}

// ISettlementUseCase moves money for invoices: online payment through the
// processor, or manual completion for off-platform settlement.
type ISettlementUseCase interface {
	SubmitPayment(ctx context.Context, cmd SubmitPaymentCommand) (entities.Payment, error)
	MarkInvoiceAsPaid(ctx context.Context, invoiceID, serviceProviderID string) ([]entities.Payment, error)
}

type SettlementUseCase struct {
	invoices   interfaces.IInvoiceRepository
	payments   interfaces.IPaymentRepository
	resolver   *EntityResolver
	aggregator *InvoiceAggregator
	processor  interfaces.IPaymentProcessor
	notifier   INotifier
	locker     interfaces.ILocker
	settings   SettlementSettings
	now        func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	invoices interfaces.IInvoiceRepository,
	payments interfaces.IPaymentRepository,
	resolver *EntityResolver,
	aggregator *InvoiceAggregator,
	processor interfaces.IPaymentProcessor,
	notifier INotifier,
	settings SettlementSettings,
) *SettlementUseCase {
	if settings.Currency == "" {
		settings.Currency = "usd"
	}
	if settings.LockTTL <= 0 {
		settings.LockTTL = 2 * time.Minute
	}
	return &SettlementUseCase{
		invoices:   invoices,
		payments:   payments,
		resolver:   resolver,
		aggregator: aggregator,
		processor:  processor,
		notifier:   notifier,
		settings:   settings,
		now:        time.Now,
	}
}

// WithLocker serializes concurrent settlements of the same payer.
func (u *SettlementUseCase) WithLocker(l interfaces.ILocker) *SettlementUseCase {
	u.locker = l
	return u
}

func (u *SettlementUseCase) SubmitPayment(ctx context.Context, cmd SubmitPaymentCommand) (entities.Payment, error) {
	invoiceID := strings.TrimSpace(cmd.InvoiceID)
	payerID := strings.TrimSpace(cmd.PayerID)
	approverID := strings.TrimSpace(cmd.PaymentApproverID)
	log := logger.FromContext(ctx).WithField("invoice_id", invoiceID).WithField("payer_id", payerID)
	log.WithField("approver_id", approverID).Info("[settlement] submit payment start")

	if invoiceID == "" {
		return entities.Payment{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid invoice id", ErrInvalidInvoiceID)
	}
	if payerID == "" {
		return entities.Payment{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid payer id", ErrInvalidPayerID)
	}

	if u.locker != nil {
		release, err := u.locker.Acquire(ctx, "settlement:"+invoiceID+":"+payerID, u.settings.LockTTL)
		if errors.Is(err, interfaces.ErrLockNotAcquired) {
			return entities.Payment{}, entities.InvalidState("A payment for this payer is already in progress", ErrPaymentInProgress)
		}
		if err != nil {
			return entities.Payment{}, entities.ExternalFailure("Could not acquire settlement lock", err)
		}
		defer release(context.WithoutCancel(ctx))
	}

	payer, ok := u.resolver.FetchUser(ctx, payerID)
	if !ok {
		return entities.Payment{}, entities.NotFound("No payer exists")
	}

	paymentID := entities.PaymentID(invoiceID, payerID)
	existing, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, entities.ExternalFailure("Could not read payments", err)
	}
	if existing.ID != "" {
		log.Info("[settlement] payer already paid")
		return entities.Payment{}, entities.InvalidState(
			fmt.Sprintf("A payment has already been made against this invoice for %s", payer.DisplayName()), entities.ErrAlreadyPaid)
	}

	charger := payer
	if approverID != "" {
		approver, ok := u.resolver.FetchUser(ctx, approverID)
		if !ok {
			return entities.Payment{}, entities.NotFound("No payment approver exists")
		}
		charger = approver
	}
	if !charger.CanBeCharged() {
		return entities.Payment{}, entities.InvalidState("No payment method exists", ErrNoPaymentMethod)
	}

	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(inv.Requests) == 0 {
		return entities.Payment{}, entities.NotFound("No invoice requests exists")
	}
	if len(inv.Payers) == 0 {
		return entities.Payment{}, entities.NotFound("No invoice payers exists")
	}
	share, ok := inv.Payer(payerID)
	if !ok {
		return entities.Payment{}, entities.NotFound("No invoice payers exists")
	}

	if approverID != "" && approverID != payerID {
		approved, err := u.aggregator.approvedBy(ctx, payerID, approverID)
		if err != nil {
			return entities.Payment{}, entities.ExternalFailure("Could not read payment approvers", err)
		}
		if !approved {
			return entities.Payment{}, entities.Unauthorized("You are not authorized to pay for this payer")
		}
	}

	transfers := u.planTransfers(ctx, inv, share)
	if len(transfers) == 0 {
		return entities.Payment{}, entities.InvalidState("Not found service providers", ErrNoTransfers)
	}

	amountShare, tipShare := payerShares(inv, share.Percentage, u.settings.ApplicationFeePercent)
	chargeMinor := entities.ToMinorUnits(amountShare.Add(tipShare))
	groupKey := inv.ID

	chargeID, err := u.processor.CreateCharge(ctx, entities.ChargeRequest{
		AmountMinor:    chargeMinor,
		Currency:       u.settings.Currency,
		CustomerID:     charger.HorseManager.Customer.ID,
		SourceToken:    strings.TrimSpace(cmd.PaymentSource),
		GroupKey:       groupKey,
		IdempotencyKey: "charge:" + inv.ID + ":" + payerID,
		Description:    inv.Name,
	})
	if err != nil {
		log.WithError(err).WithField("amount_minor", chargeMinor).Error("[settlement] charge failed")
		return entities.Payment{}, entities.ExternalFailure("Payment could not be charged", err)
	}
	log = log.WithField("charge_id", chargeID)
	log.WithField("amount_minor", chargeMinor).WithField("transfers", len(transfers)).Info("[settlement] charge created")

	planned := describeTransfers(transfers)
	for i, t := range transfers {
		_, err := u.processor.CreateTransfer(ctx, entities.TransferRequest{
			AmountMinor:    t.AmountMinor,
			Currency:       u.settings.Currency,
			ChargeID:       chargeID,
			Destination:    t.Destination,
			GroupKey:       groupKey,
			IdempotencyKey: "transfer:" + inv.ID + ":" + payerID + ":" + t.Destination,
		})
		if err != nil {
			log.WithError(err).
				WithField("destination", t.Destination).
				WithField("amount_minor", t.AmountMinor).
				WithField("failed_index", i).
				WithField("transfers", planned).
				Error("[settlement] RECONCILE transfer failed after charge")
			return entities.Payment{}, entities.PartialFailure("Payment was charged but a payout failed", chargeID, err)
		}
	}

	payment := entities.Payment{
		ID:                paymentID,
		InvoiceID:         inv.ID,
		PayerID:           payerID,
		PaymentApproverID: approverID,
		ServiceProviderID: inv.PrimaryServiceProviderID(),
		ChargeID:          chargeID,
		Amount:            amountShare,
		Tip:               tipShare,
		CreatedAt:         u.now().UTC(),
	}
	created, err := u.payments.Create(ctx, payment)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		log.WithField("transfers", planned).Warn("[settlement] concurrent payment already recorded")
		return entities.Payment{}, entities.InvalidState(
			fmt.Sprintf("A payment has already been made against this invoice for %s", payer.DisplayName()), entities.ErrAlreadyPaid)
	}
	if err != nil {
		log.WithError(err).WithField("transfers", planned).Error("[settlement] RECONCILE payment record not written after charge")
		return entities.Payment{}, entities.PartialFailure("Payment was charged but could not be recorded", chargeID, err)
	}

	if err := u.completeIfSettled(ctx, inv); err != nil {
		log.WithError(err).Error("[settlement] full settlement update failed")
		return created, entities.PartialFailure("Payment was recorded but the invoice could not be completed", chargeID, err)
	}

	receivers := make([]string, 0, len(transfers))
	for _, t := range transfers {
		receivers = append(receivers, t.UserID)
	}
	u.notifier.Push(ctx, receivers, "Submitted Payment", fmt.Sprintf("%s has submitted payment", charger.DisplayName()))
	u.notifier.Push(ctx, []string{charger.ID}, "Submitted Payment", fmt.Sprintf("You have completed payment of %s", inv.Name))

	log.Info("[settlement] submit payment done")
	return created, nil
}

// completeIfSettled marks the invoice fullPaid once every payer holds a payment.
func (u *SettlementUseCase) completeIfSettled(ctx context.Context, inv entities.Invoice) error {
	ids := make([]string, 0, len(inv.Payers))
	for _, p := range inv.Payers {
		ids = append(ids, entities.PaymentID(inv.ID, p.UserID))
	}
	paid, err := u.payments.ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(paid) != len(inv.Payers) {
		logger.FromContext(ctx).WithField("invoice_id", inv.ID).
			WithField("paid", len(paid)).WithField("payers", len(inv.Payers)).Info("[settlement] invoice partially paid")
		return nil
	}

	err = u.invoices.MarkFullPaid(ctx, inv.ID, inv.HydratedRequestIDs(), u.now().UTC())
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return nil
	}
	return err
}

func (u *SettlementUseCase) MarkInvoiceAsPaid(ctx context.Context, invoiceID, serviceProviderID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	serviceProviderID = strings.TrimSpace(serviceProviderID)
	log := logger.FromContext(ctx).WithField("invoice_id", invoiceID).WithField("service_provider_id", serviceProviderID)
	log.Info("[settlement] mark as paid start")

	if invoiceID == "" {
		return nil, entities.NewDomainError(entities.KindInvalidInput, "Invalid invoice id", ErrInvalidInvoiceID)
	}

	inv, err := u.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.IsFullPaid() {
		return nil, entities.InvalidState("This invoice has been already paid fully.", ErrInvoiceFullyPaid)
	}
	if len(inv.Payers) == 0 {
		return nil, entities.InvalidState("This invoice hasn't payers.", ErrInvoiceHasNoPayers)
	}
	if serviceProviderID == "" || inv.PrimaryServiceProviderID() != serviceProviderID {
		return nil, entities.Unauthorized("You are not authorized to mark invoice as paid.")
	}

	ids := make([]string, 0, len(inv.Payers))
	for _, p := range inv.Payers {
		ids = append(ids, entities.PaymentID(inv.ID, p.UserID))
	}
	existing, err := u.payments.ListByIDs(ctx, ids)
	if err != nil {
		return nil, entities.ExternalFailure("Could not read payments", err)
	}
	paid := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		paid[p.PayerID] = struct{}{}
	}

	now := u.now().UTC()
	var created []entities.Payment
	for _, p := range inv.Payers {
		if _, ok := paid[p.UserID]; ok {
			continue
		}
		amount, tip := payerShares(inv, p.Percentage, u.settings.ApplicationFeePercent)
		payment, err := u.payments.Create(ctx, entities.Payment{
			ID:                entities.PaymentID(inv.ID, p.UserID),
			InvoiceID:         inv.ID,
			PayerID:           p.UserID,
			ServiceProviderID: serviceProviderID,
			Amount:            amount,
			Tip:               tip,
			IsPaidOutsideApp:  true,
			CreatedAt:         now,
		})
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			log.WithField("payer_id", p.UserID).Info("[settlement] payer paid concurrently, skipping")
			continue
		}
		if err != nil {
			return created, entities.ExternalFailure("Could not record payment", err)
		}
		created = append(created, payment)
	}

	err = u.invoices.MarkFullPaid(ctx, inv.ID, inv.HydratedRequestIDs(), now)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return created, entities.InvalidState("This invoice has been already paid fully.", ErrInvoiceFullyPaid)
	}
	if err != nil {
		return created, entities.ExternalFailure("Could not complete invoice", err)
	}

	log.WithField("synthesized", len(created)).Info("[settlement] mark as paid done")
	return created, nil
}

func (u *SettlementUseCase) loadInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, entities.ExternalFailure("Could not read invoice", err)
	}
	if inv.ID == "" {
		return entities.Invoice{}, entities.NotFound("No invoice exists")
	}
	return u.aggregator.Hydrate(ctx, inv), nil
}

func describeTransfers(ts []entities.Transfer) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		parts = append(parts, fmt.Sprintf("%s=%d", t.Destination, t.AmountMinor))
	}
	return strings.Join(parts, ",")
}
