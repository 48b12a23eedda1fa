package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"equine_billing/internal/domain/entities"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// stripeServer answers Stripe API calls with canned JSON per path and
// records every request.
type stripeServer struct {
	responses map[string]string
	requests  []*http.Request
	forms     []map[string]string
}

func (s *stripeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	form := map[string]string{}
	for k := range r.PostForm {
		form[k] = r.PostForm.Get(k)
	}
	s.requests = append(s.requests, r)
	s.forms = append(s.forms, form)

	body, ok := s.responses[r.Method+" "+r.URL.Path]
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"no such route"}}`))
		return
	}
	_, _ = w.Write([]byte(body))
}

func newTestProcessor(t *testing.T, responses map[string]string) (*StripeProcessor, *stripeServer) {
	t.Helper()
	srv := &stripeServer{responses: responses}
	hs := httptest.NewServer(srv)
	t.Cleanup(hs.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(hs.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return newStripeProcessor(client.New("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})), srv
}

func TestStripeProcessor_CreateCharge(t *testing.T) {
	t.Run("card on file charges the customer", func(t *testing.T) {
		p, srv := newTestProcessor(t, map[string]string{
			"POST /v1/charges": `{"id":"ch_123","object":"charge","amount":9450}`,
		})

		id, err := p.CreateCharge(context.Background(), entities.ChargeRequest{
			AmountMinor:    9450,
			Currency:       "usd",
			CustomerID:     "cus_1",
			GroupKey:       "inv1",
			IdempotencyKey: "charge:inv1:m1",
			Description:    "March",
		})
		require.NoError(t, err)
		require.Equal(t, "ch_123", id)

		form := srv.forms[0]
		require.Equal(t, "9450", form["amount"])
		require.Equal(t, "cus_1", form["customer"])
		require.NotContains(t, form, "source")
		require.Equal(t, "inv1", form["transfer_group"])
		require.Equal(t, "charge:inv1:m1", srv.requests[0].Header.Get("Idempotency-Key"))
	})

	t.Run("one-off source is charged without the customer", func(t *testing.T) {
		p, srv := newTestProcessor(t, map[string]string{
			"POST /v1/charges": `{"id":"ch_456","object":"charge","amount":9450}`,
		})

		id, err := p.CreateCharge(context.Background(), entities.ChargeRequest{
			AmountMinor:    9450,
			Currency:       "usd",
			CustomerID:     "cus_1",
			SourceToken:    "tok_applepay",
			GroupKey:       "inv1",
			IdempotencyKey: "charge:inv1:m1",
		})
		require.NoError(t, err)
		require.Equal(t, "ch_456", id)

		form := srv.forms[0]
		require.Equal(t, "tok_applepay", form["source"])
		require.NotContains(t, form, "customer")
	})
}

func TestStripeProcessor_CreateTransfer(t *testing.T) {
	p, srv := newTestProcessor(t, map[string]string{
		"POST /v1/transfers": `{"id":"tr_1","object":"transfer"}`,
	})

	id, err := p.CreateTransfer(context.Background(), entities.TransferRequest{
		AmountMinor:    9000,
		Currency:       "usd",
		ChargeID:       "ch_123",
		Destination:    "acct_p1",
		GroupKey:       "inv1",
		IdempotencyKey: "transfer:inv1:m1:acct_p1",
	})
	require.NoError(t, err)
	require.Equal(t, "tr_1", id)
	require.Equal(t, "ch_123", srv.forms[0]["source_transaction"])
	require.Equal(t, "acct_p1", srv.forms[0]["destination"])
	require.Equal(t, "transfer:inv1:m1:acct_p1", srv.requests[0].Header.Get("Idempotency-Key"))
}

func TestStripeProcessor_ChargeDeclined(t *testing.T) {
	p, _ := newTestProcessor(t, map[string]string{})
	_, err := p.CreateCharge(context.Background(), entities.ChargeRequest{AmountMinor: 100, Currency: "usd", CustomerID: "cus_1"})
	require.Error(t, err)
}

func TestStripeProcessor_RetrieveCustomer(t *testing.T) {
	p, _ := newTestProcessor(t, map[string]string{
		"GET /v1/customers/cus_1": `{"id":"cus_1","object":"customer","default_source":"card_2"}`,
		"GET /v1/customers/cus_1/sources": `{"object":"list","has_more":false,"url":"/v1/customers/cus_1/sources","data":[
			{"id":"card_1","object":"card","brand":"Visa","last4":"4242","exp_month":4,"exp_year":2030},
			{"id":"card_2","object":"card","brand":"MasterCard","last4":"4444","exp_month":1,"exp_year":2031}]}`,
	})

	c, err := p.RetrieveCustomer(context.Background(), "cus_1")
	require.NoError(t, err)
	require.Equal(t, "card_2", c.DefaultSource)
	require.Len(t, c.Cards, 2)
	require.Equal(t, entities.Card{ID: "card_1", Brand: "Visa", Last4: "4242", ExpMonth: 4, ExpYear: 2030}, c.Cards[0])
}

func TestStripeProcessor_Accounts(t *testing.T) {
	p, srv := newTestProcessor(t, map[string]string{
		"GET /v1/accounts/acct_1":         `{"id":"acct_1","object":"account","email":"vet@example.com","charges_enabled":true,"payouts_enabled":false}`,
		"POST /v1/accounts/acct_1/reject": `{"id":"acct_1","object":"account"}`,
		"POST /v1/accounts/acct_1/login_links": `{"object":"login_link","url":"https://connect.stripe.com/express/abc"}`,
	})

	acct, err := p.RetrieveAccount(context.Background(), "acct_1")
	require.NoError(t, err)
	require.Equal(t, entities.PayoutAccount{ID: "acct_1", Email: "vet@example.com", ChargesEnabled: true}, acct)

	require.NoError(t, p.RejectAccount(context.Background(), "acct_1"))
	require.Equal(t, "fraud", srv.forms[1]["reason"])

	link, err := p.CreateLoginLink(context.Background(), "acct_1")
	require.NoError(t, err)
	require.Equal(t, "https://connect.stripe.com/express/abc", link)
}

func TestStripeProcessor_MockMode(t *testing.T) {
	p, err := NewStripeProcessor("", true)
	require.NoError(t, err)

	id, err := p.CreateCharge(context.Background(), entities.ChargeRequest{AmountMinor: 100})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "ch_mock_"))

	id, err = p.CreateTransfer(context.Background(), entities.TransferRequest{AmountMinor: 100})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "tr_mock_"))

	acct, err := p.RetrieveAccount(context.Background(), "acct_1")
	require.NoError(t, err)
	require.True(t, acct.PayoutsEnabled)
}

func TestNewStripeProcessor_MissingKey(t *testing.T) {
	_, err := NewStripeProcessor(" ", false)
	require.ErrorIs(t, err, ErrMissingStripeSecretKey)

	var p *StripeProcessor
	_, err = p.CreateCharge(context.Background(), entities.ChargeRequest{})
	require.ErrorIs(t, err, ErrProcessorNotConfigured)
}
