package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0, 0},
		{100, 10000},
		{0.1 + 0.2, 30},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ToMinorUnits(c.price), "price %v", c.price)
	}
}

func TestNewStripeGatewayNeedsKey(t *testing.T) {
	_, err := NewStripeGateway("")
	assert.Error(t, err)

	g, err := NewStripeGateway("sk_test_123")
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestStripeGatewayCreatePaymentIntent(t *testing.T) {
	forms := make(chan url.Values, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		forms <- r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_456"}`))
	}))
	defer ts.Close()

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:        stripe.String(ts.URL),
		HTTPClient: ts.Client(),
	})
	g := NewStripeGatewayWithBackends("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	secret, err := g.CreatePaymentIntent(context.Background(), ToMinorUnits(19.99), PaymentCurrency)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)

	form := <-forms
	assert.Equal(t, []string{"1999"}, form["amount"])
	assert.Equal(t, []string{"usd"}, form["currency"])
	assert.Equal(t, []string{"card"}, form["payment_method_types[0]"])
}
