package http

import (
	"errors"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"go-balance-rates/domain"
	"go-balance-rates/exchange"
	"go-balance-rates/page"
	"go.uber.org/mock/gomock"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
)

const productsPage = `<html><body>
<table class="conversion-table">
	<tr><td>USD</td><td>2,5000</td><td>2,6000</td></tr>
	<tr><td>EUR</td><td>2,7000</td><td>2,8000</td></tr>
	<tr><td>EUR/USD</td><td>1,0800</td><td>1,0900</td></tr>
</table>
<div class="product-body"><table class="balance-table"><tbody>
	<tr><td><div class="summ balance">1 000,00</div></td><td><div class="currency">BYN</div></td></tr>
</tbody></table></div>
</body></html>`

func TestServer_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	es := NewMockService(ctrl)

	rates := domain.Rates{"USD": {Currency: "USD", Buy: 2.5, Cell: 2.6}}
	es.EXPECT().
		Convert(gomock.Any(), domain.Currency("USD"), "1 000,00", rates).
		Return([]domain.Conversion{{Currency: "BYN", Amount: 2500, Text: "2 500,00"}}, nil)

	server := NewServer(es, log.NewNopLogger(), Options{})

	w := httptest.NewRecorder()
	msg := `{"currency":"USD","balance":"1 000,00","rates":[{"currency":"USD","buy":"2,50","cell":"2,60"}]}`
	r := httptest.NewRequest("POST", "/api/convert", strings.NewReader(msg))

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `{"conversions":[{"currency":"BYN","amount":2500,"text":"2 500,00"}]}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_Convert_UnreadableBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	es := NewMockService(ctrl)
	es.EXPECT().
		Convert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Conversion{{Currency: "USD", Amount: math.NaN(), Text: "0"}}, nil)

	server := NewServer(es, log.NewNopLogger(), Options{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/convert", strings.NewReader(`{"currency":"BYN","balance":"n/a"}`))

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `{"conversions":[{"currency":"USD","amount":null,"text":"0"}]}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_Convert_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	es := NewMockService(ctrl)
	es.EXPECT().
		Convert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	server := NewServer(es, log.NewNopLogger(), Options{})

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("POST", "/api/convert", strings.NewReader(`{not json`)))
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, `{"error": "invalid json"}`, w.Body.String())

	w = httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("POST", "/api/convert", strings.NewReader(`{"currency":"BYN","balance":"1"}`)))
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, `{"error": "failed conversion"}`, w.Body.String())
}

func TestServer_Convert_WithService(t *testing.T) {
	server := NewServer(exchange.NewService(exchange.DefaultPolicy(), page.RowsReplace), log.NewNopLogger(), Options{})

	w := httptest.NewRecorder()
	msg := `{"currency":"USD","balance":"1000","rates":[
		{"currency":"USD","buy":"2,5","cell":"2,6"},
		{"currency":"EUR/USD","buy":"1,08","cell":"1,09"}]}`
	server.ServeHTTP(w, httptest.NewRequest("POST", "/api/convert", strings.NewReader(msg)))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"currency":"BYN"`)
	assert.Contains(t, w.Body.String(), `"text":"2500.00"`)
	assert.Contains(t, w.Body.String(), `"currency":"EUR"`)
	assert.Contains(t, w.Body.String(), `"text":"925.93"`)
}

func TestServer_Augment(t *testing.T) {
	server := NewServer(exchange.NewService(exchange.DefaultPolicy(), page.RowsReplace), log.NewNopLogger(), Options{})

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("POST", "/api/augment", strings.NewReader(productsPage)))

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "1", w.Header().Get("X-Augment-Cards"))
	assert.Equal(t, "2", w.Header().Get("X-Augment-Rows"))
	assert.Contains(t, w.Body.String(), `<tr class="rate-box usd"><td><div class="summ balance">384,62</div></td><td><div class="currency">USD</div></td></tr>`)
}

func TestServer_Augment_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		options Options
		want    int
	}{
		{"no rate table", `<p>nothing here</p>`, Options{}, 422},
		{"body too large", productsPage, Options{MaxBodyBytes: 16}, 413},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(exchange.NewService(exchange.DefaultPolicy(), page.RowsReplace), log.NewNopLogger(), tt.options)

			w := httptest.NewRecorder()
			server.ServeHTTP(w, httptest.NewRequest("POST", "/api/augment", strings.NewReader(tt.body)))

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestServer_Health(t *testing.T) {
	server := NewServer(NewMockService(gomock.NewController(t)), log.NewNopLogger(), Options{})

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
