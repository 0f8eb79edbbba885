package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/logistics-net-api/internal/application/account"
	"github.com/logistics-net-api/internal/application/catalog"
	"github.com/logistics-net-api/internal/config"
	"github.com/logistics-net-api/internal/domain"
	"github.com/logistics-net-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureMailer records the last body sent per recipient.
type captureMailer struct {
	mu   sync.Mutex
	last map[string]string
}

func (m *captureMailer) SendEmail(_ context.Context, to, _, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last[to] = body
	return nil
}

var codePattern = regexp.MustCompile(`\b\d{6}\b`)

func (m *captureMailer) code(t *testing.T, to string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	code := codePattern.FindString(m.last[to])
	require.NotEmpty(t, code, "no code mailed to %s", to)
	return code
}

type stubPredictor struct{}

func (stubPredictor) Predict(context.Context, domain.RecommendRequest) (json.RawMessage, error) {
	return json.RawMessage(`{"top_choice":"Blue Dart","balanced_option":"DTDC","value_pick":"Delhivery"}`), nil
}

func newTestRouter(t *testing.T) (http.Handler, *captureMailer) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	mailer := &captureMailer{last: map[string]string{}}
	stores := map[domain.Variant]account.Store{}
	for _, v := range domain.Variants {
		stores[v] = memory.NewAccountStore()
	}
	cfg := &config.Config{
		OTP:            config.OTPConfig{TTL: 5 * time.Minute},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		AllowedOrigins: []string{"https://logistics-net.vercel.app"},
	}
	return NewRouter(ctx, cfg, &Deps{
		OTPLedger:     memory.NewOTPStore(),
		AccountStores: stores,
		Mailer:        mailer,
		Predictor:     stubPredictor{},
		Catalog:       catalog.NewService(),
	}), mailer
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func message(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env.Message
}

func TestRouter_OTPFlow(t *testing.T) {
	h, mailer := newTestRouter(t)

	rr := do(h, http.MethodPost, "/api/send-otp", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	code := mailer.code(t, "a@x.com")

	rr = do(h, http.MethodPost, "/api/verify-otp", `{"email":"a@x.com","otp":"`+code+`"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Email verified successfully.", message(t, rr))

	rr = do(h, http.MethodPost, "/api/verify-otp", `{"email":"a@x.com","otp":"`+code+`"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid or expired OTP.", message(t, rr))
}

func TestRouter_ReissueInvalidatesOldCode(t *testing.T) {
	h, mailer := newTestRouter(t)

	var first, second string
	for first == second {
		require.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/send-otp", `{"email":"a@x.com"}`).Code)
		first = mailer.code(t, "a@x.com")
		require.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/send-otp", `{"email":"a@x.com"}`).Code)
		second = mailer.code(t, "a@x.com")
	}

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/api/verify-otp", `{"email":"a@x.com","otp":"`+first+`"}`).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/verify-otp", `{"email":"a@x.com","otp":"`+second+`"}`).Code)
}

func TestRouter_RegisterAndLogin(t *testing.T) {
	h, _ := newTestRouter(t)
	body := `{"fullName":"Jo","email":"a@x.com","password":"pw"}`

	rr := do(h, http.MethodPost, "/api/register/customer", body)
	assert.Equal(t, http.StatusCreated, rr.Code)
	rr = do(h, http.MethodPost, "/api/register/customer", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Account with this email already exists.", message(t, rr))

	rr = do(h, http.MethodPost, "/api/register/business",
		`{"companyName":"Acme","businessType":"Retail","companySize":"10-50","monthlyShipments":120,"email":"a@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/login/customer", `{"email":"a@x.com","password":"pw"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodPost, "/api/login/customer", `{"email":"a@x.com","password":"nope"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodPost, "/api/login/startup", `{"email":"a@x.com","password":"pw"}`).Code)
}

func TestRouter_CatalogAndRecommend(t *testing.T) {
	h, _ := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/company/TCI%20Express", "").Code)
	rr := do(h, http.MethodGet, "/api/company/Unknown", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Company details not found.", message(t, rr))

	rr = do(h, http.MethodPost, "/api/recommend", `{"origin":"Bhopal","destination":"Pune","priorities":["speed"],"fragility":"Low"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Blue Dart")
}

func TestRouter_RootAndFavicon(t *testing.T) {
	h, _ := newTestRouter(t)
	assert.Equal(t, "Welcome to the Logistics Net Backend!", do(h, http.MethodGet, "/", "").Body.String())
	assert.Equal(t, http.StatusNoContent, do(h, http.MethodGet, "/favicon.ico", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/health-check/ping", "").Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t)
	r := httptest.NewRequest(http.MethodOptions, "/api/send-otp", nil)
	r.Header.Set("Origin", "https://logistics-net.vercel.app")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	assert.Equal(t, "https://logistics-net.vercel.app", rr.Header().Get("Access-Control-Allow-Origin"))
}
