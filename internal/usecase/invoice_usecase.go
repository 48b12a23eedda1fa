package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"

	"github.com/dustin/go-humanize"
)

const (
	DefaultInvoiceLimit = 20
	MaxPageLimit        = 100
)

var ErrNoInvoicesMatched = errors.New("no invoices matched")

type InvoiceSearch struct {
	UserID   string
	Statuses []entities.InvoiceStatus
	Cursor   string
	Limit    int
}

type InvoiceExportFilter struct {
	UserID             string
	Status             entities.InvoiceStatus
	StartDate          time.Time
	EndDate            time.Time
	ServiceProviderIDs []string
	HorseManagerIDs    []string
	HorseIDs           []string
}

type InvoiceExport struct {
	FileName string
	Count    int
	URL      string
	Emailed  bool
	CSV      []byte
}

// IInvoiceUseCase exposes hydrated invoice reads and invoice lifecycle hooks.
type IInvoiceUseCase interface {
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	SearchInvoices(ctx context.Context, q InvoiceSearch) (entities.Page[entities.Invoice], error)
	ExportInvoices(ctx context.Context, f InvoiceExportFilter) (InvoiceExport, error)
	RequestPayment(ctx context.Context, id string) error
	Listeners(ctx context.Context, id string) ([]entities.ListenerUser, error)
	PaymentStatus(ctx context.Context, id string) (entities.PaymentProgress, error)
	HandleInvoiceCreated(ctx context.Context, id string) error
	HandleInvoiceUpdated(ctx context.Context, id string) error
}

type InvoiceUseCase struct {
	invoices   interfaces.IInvoiceRepository
	requests   interfaces.IServiceRequestRepository
	payments   interfaces.IPaymentRepository
	resolver   *EntityResolver
	aggregator *InvoiceAggregator
	notifier   INotifier
	mailer     interfaces.IMailer
	archive    interfaces.IExportArchive
	now        func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoices interfaces.IInvoiceRepository,
	requests interfaces.IServiceRequestRepository,
	payments interfaces.IPaymentRepository,
	resolver *EntityResolver,
	aggregator *InvoiceAggregator,
	notifier INotifier,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices:   invoices,
		requests:   requests,
		payments:   payments,
		resolver:   resolver,
		aggregator: aggregator,
		notifier:   notifier,
		now:        time.Now,
	}
}

// WithExportSinks sets where exported CSV files go. Either may be nil.
func (u *InvoiceUseCase) WithExportSinks(mailer interfaces.IMailer, archive interfaces.IExportArchive) *InvoiceUseCase {
	u.mailer = mailer
	u.archive = archive
	return u
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid invoice id", ErrInvalidInvoiceID)
	}
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, entities.ExternalFailure("Could not read invoice", err)
	}
	if inv.ID == "" {
		return entities.Invoice{}, entities.NotFound("No invoice exists")
	}
	return u.aggregator.Hydrate(ctx, inv), nil
}

// SearchInvoices pages through invoices visible to the user. Providers see
// invoices whose first request is theirs; managers see invoices they pay or
// approve. The store is over-fetched and filtered until the page fills.
func (u *InvoiceUseCase) SearchInvoices(ctx context.Context, q InvoiceSearch) (entities.Page[entities.Invoice], error) {
	user, ok := u.resolver.FetchUser(ctx, q.UserID)
	if !ok {
		return entities.Page[entities.Invoice]{}, entities.NotFound("No user exists")
	}
	limit := clampLimit(q.Limit, DefaultInvoiceLimit)
	fetch := queryLimit(limit)

	var out []entities.Invoice
	after := strings.TrimSpace(q.Cursor)
	for {
		batch, err := u.invoices.ListPage(ctx, interfaces.InvoiceQuery{}, after, fetch)
		if err != nil {
			return entities.Page[entities.Invoice]{}, entities.ExternalFailure("Could not search invoices", err)
		}
		for _, inv := range batch {
			after = inv.ID
			if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, inv.Status) {
				continue
			}
			inv = u.aggregator.Hydrate(ctx, inv)
			if !invoiceVisibleTo(user, inv) {
				continue
			}
			out = append(out, inv)
			if len(out) == limit {
				return entities.Page[entities.Invoice]{Items: out, NextCursor: inv.ID}, nil
			}
		}
		if len(batch) < fetch {
			return entities.Page[entities.Invoice]{Items: out}, nil
		}
	}
}

func invoiceVisibleTo(user entities.User, inv entities.Invoice) bool {
	if user.Type == entities.UserTypeServiceProvider {
		return inv.PrimaryServiceProviderID() == user.ID
	}
	return isPayerOrApprover(inv, user.ID)
}

func isPayerOrApprover(inv entities.Invoice, userID string) bool {
	if _, ok := inv.Payer(userID); ok {
		return true
	}
	for _, a := range inv.PaymentApprovers {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// ExportInvoices builds a CSV of the user's invoices matching f, archives it
// and emails it when those sinks are configured.
func (u *InvoiceUseCase) ExportInvoices(ctx context.Context, f InvoiceExportFilter) (InvoiceExport, error) {
	log := logger.FromContext(ctx).WithField("user_id", f.UserID)
	user, ok := u.resolver.FetchUser(ctx, f.UserID)
	if !ok {
		return InvoiceExport{}, entities.NotFound("No user exists")
	}

	query := interfaces.InvoiceQuery{Status: f.Status, CreatedFrom: f.StartDate, CreatedTo: f.EndDate}
	var matched []entities.Invoice
	after := ""
	for {
		batch, err := u.invoices.ListPage(ctx, query, after, MaxPageLimit)
		if err != nil {
			return InvoiceExport{}, entities.ExternalFailure("Could not read invoices", err)
		}
		for _, inv := range batch {
			after = inv.ID
			inv = u.aggregator.Hydrate(ctx, inv)
			if exportMatches(user, inv, f) {
				matched = append(matched, inv)
			}
		}
		if len(batch) < MaxPageLimit {
			break
		}
	}
	if len(matched) == 0 {
		return InvoiceExport{}, entities.NewDomainError(entities.KindNotFound, "No invoices to be matched to your filters.", ErrNoInvoicesMatched)
	}
	slices.SortStableFunc(matched, func(a, b entities.Invoice) int { return b.CreatedAt.Compare(a.CreatedAt) })

	data, err := InvoicesCSV(matched)
	if err != nil {
		return InvoiceExport{}, fmt.Errorf("build invoices csv: %w", err)
	}
	out := InvoiceExport{
		FileName: fmt.Sprintf("invoices-%s-%s.csv", user.ID, u.now().UTC().Format("20060102150405")),
		Count:    len(matched),
		CSV:      data,
	}

	if u.archive != nil {
		url, err := u.archive.Put(ctx, out.FileName, "text/csv", data)
		if err != nil {
			return InvoiceExport{}, entities.ExternalFailure("Could not store export", err)
		}
		out.URL = url
	}
	if u.mailer != nil && user.Email != "" {
		err := u.mailer.Send(ctx, interfaces.Mail{
			To:      []string{user.Email},
			Subject: "Your invoice export",
			Body:    fmt.Sprintf("Attached are %s invoices.", humanize.Comma(int64(len(matched)))),
			Attachments: []interfaces.Attachment{
				{FileName: out.FileName, ContentType: "text/csv", Data: data},
			},
		})
		if err != nil {
			return InvoiceExport{}, entities.ExternalFailure("Could not send export email", err)
		}
		out.Emailed = true
	}

	log.WithField("count", out.Count).Info("[invoice] export done")
	return out, nil
}

func exportMatches(user entities.User, inv entities.Invoice, f InvoiceExportFilter) bool {
	if len(f.HorseIDs) > 0 && !slices.ContainsFunc(inv.Requests, func(r entities.ServiceRequest) bool {
		return slices.Contains(f.HorseIDs, r.HorseID)
	}) {
		return false
	}

	if user.Type == entities.UserTypeServiceProvider {
		if inv.PrimaryServiceProviderID() != user.ID {
			return false
		}
		if len(f.HorseManagerIDs) == 0 {
			return true
		}
		return slices.ContainsFunc(f.HorseManagerIDs, func(id string) bool { return isPayerOrApprover(inv, id) })
	}

	if !isPayerOrApprover(inv, user.ID) {
		return false
	}
	if len(f.ServiceProviderIDs) == 0 {
		return true
	}
	return slices.Contains(f.ServiceProviderIDs, inv.PrimaryServiceProviderID())
}

// InvoicesCSV renders one row per invoice with provider and payer names joined by ';'.
func InvoicesCSV(invoices []entities.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write([]string{"Name", "Status", "Amount", "Tip", "Invoice Date", "Paid Date", "Service Providers", "Payers"}); err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		paid := "Not Paid Yet"
		if inv.PaidAt != nil {
			paid = formatExportDate(*inv.PaidAt)
		}
		var providers, payers []string
		for _, r := range inv.Requests {
			if r.ServiceProvider != nil {
				providers = append(providers, r.ServiceProvider.Name)
			}
		}
		for _, p := range inv.Payers {
			payers = append(payers, p.Name)
		}
		row := []string{
			inv.Name,
			strings.ToUpper(string(inv.Status)),
			"$" + inv.Amount.StringFixed(2),
			"$" + inv.Tip.StringFixed(2),
			formatExportDate(inv.CreatedAt),
			paid,
			strings.Join(providers, ";"),
			strings.Join(payers, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// formatExportDate renders "Jan 2nd, 2006".
func formatExportDate(t time.Time) string {
	return t.Format("Jan ") + ordinalDay(t) + t.Format(", 2006")
}

func ordinalDay(t time.Time) string {
	return humanize.Ordinal(t.Day())
}

// RequestPayment reminds every payer that the invoice is outstanding.
func (u *InvoiceUseCase) RequestPayment(ctx context.Context, id string) error {
	inv, err := u.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	if len(inv.Payers) == 0 {
		return entities.NotFound("No invoice payers exists")
	}
	if inv.IsFullPaid() {
		return entities.InvalidState("This invoice has been already paid fully.", ErrInvoiceFullyPaid)
	}

	receivers := make([]string, 0, len(inv.Payers))
	for _, p := range inv.Payers {
		receivers = append(receivers, p.UserID)
	}
	body := fmt.Sprintf("Your invoice of $%s remains outstanding. Head to the Payments tab to resolve the invoice.", inv.Amount.StringFixed(2))
	u.notifier.Push(ctx, receivers, "Request Payment", body)
	return nil
}

func (u *InvoiceUseCase) Listeners(ctx context.Context, id string) ([]entities.ListenerUser, error) {
	inv, err := u.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return InvoiceListeners(inv), nil
}

// PaymentStatus infers settlement progress from payment records.
func (u *InvoiceUseCase) PaymentStatus(ctx context.Context, id string) (entities.PaymentProgress, error) {
	inv, err := u.GetInvoice(ctx, id)
	if err != nil {
		return "", err
	}
	payments, err := u.payments.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return "", entities.ExternalFailure("Could not read payments", err)
	}
	count := 0
	for _, p := range payments {
		if _, ok := inv.Payer(p.PayerID); ok {
			count++
		}
	}
	return inv.Progress(count), nil
}

// HandleInvoiceCreated marks the invoice's requests invoiced, notifies the
// payers and stores the listener projection.
func (u *InvoiceUseCase) HandleInvoiceCreated(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithField("invoice_id", id)
	inv, err := u.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	if err := u.requests.MarkInvoiced(ctx, inv.RequestIDs, u.now().UTC()); err != nil {
		log.WithError(err).Error("[invoice] marking requests invoiced failed")
		return entities.ExternalFailure("Could not update invoice requests", err)
	}

	if len(inv.Requests) > 0 && inv.Requests[0].ServiceProvider != nil && len(inv.Payers) > 0 {
		provider := inv.Requests[0].ServiceProvider
		receivers := make([]string, 0, len(inv.Payers))
		for _, p := range inv.Payers {
			receivers = append(receivers, p.UserID)
		}
		message := fmt.Sprintf("You have new invoice from %s.", provider.Name)
		u.notifier.Push(ctx, receivers, "New Invoice", message)
		u.notifier.Record(ctx, providerCreator(provider), receivers, message)
	}

	u.storeListeners(ctx, inv)
	return nil
}

func (u *InvoiceUseCase) HandleInvoiceUpdated(ctx context.Context, id string) error {
	inv, err := u.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	u.storeListeners(ctx, inv)
	return nil
}

func (u *InvoiceUseCase) storeListeners(ctx context.Context, inv entities.Invoice) {
	if err := u.invoices.UpdateListeners(ctx, inv.ID, InvoiceListeners(inv)); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("invoice_id", inv.ID).Warn("[invoice] listener update failed")
	}
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, MaxPageLimit)
}

// queryLimit over-fetches to absorb client-side filtering.
func queryLimit(limit int) int {
	return limit * 2
}
