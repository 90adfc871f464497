package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vault/config"
	"vault/internal/delivery/api/router"
	"vault/internal/delivery/api/router/handler"
	deliverycontext "vault/internal/delivery/context"
	"vault/internal/infra/auth"
	"vault/internal/infra/generator"
	"vault/internal/infra/qrcode"
	"vault/internal/infra/strength"
	"vault/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *apiServer {
	t.Helper()

	cfg := config.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uc := impl.NewPasswordService(impl.PasswordServiceParams{
		Scorer:    strength.NewScorer(),
		Generator: generator.NewPasswordGenerator(),
		QRCode:    qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel),
		Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Config:    cfg,
		Logger:    logger,
	})

	lc := fxtest.NewLifecycle(t)
	d, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			PasswordHandler: handler.NewPasswordHandler(handler.PasswordHandlerParams{PasswordUC: uc, Logger: logger}),
		},
	})
	require.NoError(t, err)

	srv, ok := d.(*apiServer)
	require.True(t, ok)

	return srv
}

func serve(srv *apiServer, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	return rec
}

func TestServer_Generate(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodPost, "/api/v1/passwords/generate", `{"length":20,"enhanced":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body struct {
		Data struct {
			Password     string `json:"password"`
			TargetLength int    `json:"target_length"`
			Strength     struct {
				Label string `json:"label"`
			} `json:"strength"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 20, body.Data.TargetLength)
	assert.GreaterOrEqual(t, len([]rune(body.Data.Password)), 20)
	assert.Equal(t, "Unbreakable", body.Data.Strength.Label)
}

func TestServer_Generate_EmptyCharset(t *testing.T) {
	srv := newTestServer(t)

	body := `{"uppercase":false,"lowercase":false,"numbers":false,"symbols":false}`
	rec := serve(srv, http.MethodPost, "/api/v1/passwords/generate", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPTY_CHARSET")
}

func TestServer_EchoesRequestID(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}

func TestServer_NotFoundUsesErrorEnvelope(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_HashVerifyRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodPost, "/api/v1/passwords/hash", `{"password":"correct horse"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var hashed struct {
		Data handler.HashResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hashed))

	payload, err := json.Marshal(map[string]string{"password": "wrong horse", "hash": hashed.Data.Hash})
	require.NoError(t, err)

	rec = serve(srv, http.MethodPost, "/api/v1/passwords/verify", string(payload))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"match":false`)
}

func TestServer_QRCode_RejectsContentBeyondCapacity(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodPost, "/api/v1/passwords/qr", `{"password":"`+strings.Repeat("x", 4000)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// within the rune bound but beyond QR byte capacity
	rec = serve(srv, http.MethodPost, "/api/v1/passwords/qr", `{"password":"`+strings.Repeat("₿", 1000)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "QRCODE_FAILED")

	rec = serve(srv, http.MethodPost, "/api/v1/passwords/qr", `{"password":"k#8Zq!w2Lp@4"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}
