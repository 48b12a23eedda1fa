package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	mock_interfaces "equine_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newInvoiceUC(s *memStore, notifier INotifier) *InvoiceUseCase {
	uc := NewInvoiceUseCase(memInvoices{s}, memRequests{s}, memPayments{s}, s.resolver(), s.aggregator(), notifier)
	uc.now = func() time.Time { return time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC) }
	return uc
}

// manyInvoicesStore creates n single-request invoices for provider p1; even
// ones are owned by m1, odd ones by m2.
func manyInvoicesStore(n int) *memStore {
	s := newMemStore()
	s.addUser(manager("m1", "Alice"))
	s.addUser(manager("m2", "Bob"))
	s.addUser(provider("p1", "Vet"))
	s.addUser(provider("p2", "Farrier"))
	s.addHorse(entities.Horse{ID: "h1"}, owner("m1", "Alice", 100))
	s.addHorse(entities.Horse{ID: "h2"}, owner("m2", "Bob", 100))
	for i := 0; i < n; i++ {
		horse := "h1"
		if i%2 == 1 {
			horse = "h2"
		}
		rid := fmt.Sprintf("r%d", i)
		s.addRequest(entities.ServiceRequest{ID: rid, HorseID: horse, ServiceProviderID: "p1", Services: []entities.ServiceLine{line("10", 1)}})
		s.addInvoice(entities.Invoice{
			ID:         fmt.Sprintf("inv%d", i),
			Name:       fmt.Sprintf("Invoice %d", i),
			RequestIDs: []string{rid},
			Status:     entities.InvoiceStatusPending,
			CreatedAt:  time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return s
}

func TestInvoiceUseCase_SearchInvoices(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		uc := newInvoiceUC(newMemStore(), &recordingNotifier{})
		_, err := uc.SearchInvoices(context.Background(), InvoiceSearch{UserID: "ghost"})
		expectKind(t, err, entities.KindNotFound)
	})

	t.Run("manager pages through own invoices", func(t *testing.T) {
		s := manyInvoicesStore(10)
		uc := newInvoiceUC(s, &recordingNotifier{})

		page, err := uc.SearchInvoices(context.Background(), InvoiceSearch{UserID: "m1", Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Items) != 2 || page.Items[0].ID != "inv0" || page.Items[1].ID != "inv2" || page.NextCursor != "inv2" {
			t.Fatalf("unexpected first page: %+v", page)
		}

		var all []string
		cursor := ""
		for {
			page, err := uc.SearchInvoices(context.Background(), InvoiceSearch{UserID: "m1", Limit: 2, Cursor: cursor})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, inv := range page.Items {
				all = append(all, inv.ID)
			}
			if page.NextCursor == "" {
				break
			}
			cursor = page.NextCursor
		}
		if strings.Join(all, ",") != "inv0,inv2,inv4,inv6,inv8" {
			t.Fatalf("unexpected pages: %v", all)
		}
	})

	t.Run("provider sees invoices led by them", func(t *testing.T) {
		s := manyInvoicesStore(3)
		uc := newInvoiceUC(s, &recordingNotifier{})

		page, err := uc.SearchInvoices(context.Background(), InvoiceSearch{UserID: "p1"})
		if err != nil || len(page.Items) != 3 {
			t.Fatalf("expected 3 invoices, got %d err=%v", len(page.Items), err)
		}
		page, err = uc.SearchInvoices(context.Background(), InvoiceSearch{UserID: "p2"})
		if err != nil || len(page.Items) != 0 {
			t.Fatalf("expected no invoices, got %d err=%v", len(page.Items), err)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		s := manyInvoicesStore(4)
		inv := s.invoices["inv2"]
		inv.Status = entities.InvoiceStatusFullPaid
		s.invoices["inv2"] = inv
		uc := newInvoiceUC(s, &recordingNotifier{})

		page, err := uc.SearchInvoices(context.Background(), InvoiceSearch{UserID: "m1", Statuses: []entities.InvoiceStatus{entities.InvoiceStatusFullPaid}})
		if err != nil || len(page.Items) != 1 || page.Items[0].ID != "inv2" {
			t.Fatalf("unexpected result: %+v err=%v", page, err)
		}
	})
}

func TestInvoiceUseCase_ExportInvoices(t *testing.T) {
	t.Run("no matches", func(t *testing.T) {
		s := manyInvoicesStore(2)
		uc := newInvoiceUC(s, &recordingNotifier{})
		_, err := uc.ExportInvoices(context.Background(), InvoiceExportFilter{UserID: "p2"})
		if !errors.Is(err, ErrNoInvoicesMatched) {
			t.Fatalf("expected ErrNoInvoicesMatched, got %v", err)
		}
	})

	t.Run("archives and emails csv", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := manyInvoicesStore(4)
		u := s.users["p1"]
		u.Email = "vet@example.com"
		s.users["p1"] = u
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		archive := mock_interfaces.NewMockIExportArchive(ctrl)
		uc := newInvoiceUC(s, &recordingNotifier{}).WithExportSinks(mailer, archive)

		archive.EXPECT().Put(gomock.Any(), "invoices-p1-20240302100000.csv", "text/csv", gomock.Any()).Return("https://files/export.csv", nil)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m interfaces.Mail) error {
			if len(m.To) != 1 || m.To[0] != "vet@example.com" || len(m.Attachments) != 1 {
				t.Fatalf("unexpected mail: %+v", m)
			}
			return nil
		})

		out, err := uc.ExportInvoices(context.Background(), InvoiceExportFilter{UserID: "p1", HorseManagerIDs: []string{"m2"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 || out.URL != "https://files/export.csv" || !out.Emailed {
			t.Fatalf("unexpected export: %+v", out)
		}
		lines := strings.Split(strings.TrimSpace(string(out.CSV)), "\r\n")
		if len(lines) != 3 {
			t.Fatalf("expected header and two rows, got %q", out.CSV)
		}
		if lines[1] != `Invoice 3,PENDING,$10.00,$0.00,"Jan 4th, 2024",Not Paid Yet,Vet,Bob` {
			t.Fatalf("unexpected first row: %q", lines[1])
		}
	})
}

func TestInvoicesCSV(t *testing.T) {
	paid := time.Date(2024, 2, 22, 0, 0, 0, 0, time.UTC)
	data, err := InvoicesCSV([]entities.Invoice{{
		Name:      "Spring",
		Status:    entities.InvoiceStatusFullPaid,
		Amount:    dec("120.5"),
		Tip:       dec("3"),
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		PaidAt:    &paid,
		Requests: []entities.ServiceRequest{
			{ServiceProvider: &entities.ServiceProvider{Name: "Vet"}},
			{ServiceProvider: &entities.ServiceProvider{Name: "Farrier"}},
		},
		Payers: []entities.Payer{{Name: "Alice"}, {Name: "Bob"}},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Name,Status,Amount,Tip,Invoice Date,Paid Date,Service Providers,Payers\r\n" +
		"Spring,FULLPAID,$120.50,$3.00,\"Feb 1st, 2024\",\"Feb 22nd, 2024\",Vet;Farrier,Alice;Bob\r\n"
	if string(data) != want {
		t.Fatalf("unexpected csv:\n%q\nwant\n%q", data, want)
	}
}

func TestInvoiceUseCase_RequestPayment(t *testing.T) {
	t.Run("notifies payers", func(t *testing.T) {
		s := coOwnedStore()
		notifier := &recordingNotifier{}
		uc := newInvoiceUC(s, notifier)

		if err := uc.RequestPayment(context.Background(), "inv1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.pushes) != 1 {
			t.Fatalf("expected one push, got %d", len(notifier.pushes))
		}
		p := notifier.pushes[0]
		if strings.Join(p.receivers, ",") != "m1,m2" || p.title != "Request Payment" || !strings.Contains(p.body, "$150.00") {
			t.Fatalf("unexpected push: %+v", p)
		}
	})

	t.Run("missing invoice", func(t *testing.T) {
		uc := newInvoiceUC(newMemStore(), &recordingNotifier{})
		err := uc.RequestPayment(context.Background(), "nope")
		expectKind(t, err, entities.KindNotFound)
	})
}

func TestInvoiceUseCase_PaymentStatus(t *testing.T) {
	s := coOwnedStore()
	uc := newInvoiceUC(s, &recordingNotifier{})

	got, err := uc.PaymentStatus(context.Background(), "inv1")
	if err != nil || got != entities.PaymentProgressUnpaid {
		t.Fatalf("expected unpaid, got %s err=%v", got, err)
	}

	s.payments["x"] = entities.Payment{ID: "x", InvoiceID: "inv1", PayerID: "m1"}
	got, _ = uc.PaymentStatus(context.Background(), "inv1")
	if got != entities.PaymentProgressPartiallyPaid {
		t.Fatalf("expected partiallyPaid, got %s", got)
	}

	s.payments["y"] = entities.Payment{ID: "y", InvoiceID: "inv1", PayerID: "m2"}
	got, _ = uc.PaymentStatus(context.Background(), "inv1")
	if got != entities.PaymentProgressFullPaid {
		t.Fatalf("expected fullPaid, got %s", got)
	}
}

func TestInvoiceUseCase_HandleInvoiceCreated(t *testing.T) {
	s := coOwnedStore()
	for _, id := range []string{"r1", "r2"} {
		r := s.requests[id]
		r.Status = entities.ServiceRequestStatusCompleted
		s.requests[id] = r
	}
	notifier := &recordingNotifier{}
	uc := newInvoiceUC(s, notifier)

	if err := uc.HandleInvoiceCreated(context.Background(), "inv1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"r1", "r2"} {
		if s.requests[id].Status != entities.ServiceRequestStatusInvoiced {
			t.Fatalf("expected %s invoiced, got %s", id, s.requests[id].Status)
		}
	}
	if len(notifier.pushes) != 1 || notifier.pushes[0].body != "You have new invoice from Dr Vet." {
		t.Fatalf("unexpected pushes: %+v", notifier.pushes)
	}
	if len(notifier.records) != 1 || len(notifier.records[0].receivers) != 2 {
		t.Fatalf("unexpected records: %+v", notifier.records)
	}
	if got := s.invoices["inv1"].ListenerUsers; len(got) != 3 {
		t.Fatalf("expected 3 listeners, got %+v", got)
	}
}
