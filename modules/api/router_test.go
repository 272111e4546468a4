package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refcode/modules/api"
	"github.com/dmitrymomot/refcode/pkg/logger"
	"github.com/dmitrymomot/refcode/pkg/reference"
)

type generateBody struct {
	Kind       string   `json:"kind"`
	References []string `json:"references"`
	Error      string   `json:"error"`
}

func newRouter(opts api.RouterOptions) http.Handler {
	if opts.Generator == nil {
		opts.Generator = reference.New(reference.WithSeed(11))
	}
	return api.Router(opts)
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func decodeGenerate(t *testing.T, rec *httptest.ResponseRecorder) generateBody {
	t.Helper()
	var body generateBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	h := newRouter(api.RouterOptions{})

	tests := []struct {
		target  string
		kind    string
		count   int
		pattern string
	}{
		{"/references/numeric?length=5&prefix=REF-", "numeric", 1, `^REF-\d{5}$`},
		{"/references/alpha?length=4&count=3", "alphabetic", 3, `^[A-Z]{4}$`},
		{"/references/alnum", "alphanumeric", 1, `^[A-Z0-9]{8}$`},
		{"/references/SECURE?length=10", "secure", 1, `^[A-Z0-9]{10}$`},
		{"/references/uuid?prefix=id:", "guid", 1, `^id:[0-9a-f-]{36}$`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			body := decodeGenerate(t, rec)
			assert.Equal(t, tt.kind, body.Kind)
			require.Len(t, body.References, tt.count)
			for _, ref := range body.References {
				assert.Regexp(t, tt.pattern, ref)
			}
		})
	}
}

func TestGenerate_PrefixIsURLDecoded(t *testing.T) {
	t.Parallel()

	rec := do(t, newRouter(api.RouterOptions{}), http.MethodGet, "/references/numeric?length=3&prefix=INV%2F2024%20", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `^INV/2024 \d{3}$`, decodeGenerate(t, rec).References[0])
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()
	h := newRouter(api.RouterOptions{MaxLength: 16, MaxCount: 5})

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{"unknown kind", "/references/hex?length=4", http.StatusNotFound},
		{"zero length", "/references/numeric?length=0", http.StatusBadRequest},
		{"negative length", "/references/numeric?length=-1", http.StatusBadRequest},
		{"non-integer length", "/references/numeric?length=ten", http.StatusBadRequest},
		{"length over limit", "/references/numeric?length=17", http.StatusBadRequest},
		{"count over limit", "/references/numeric?length=4&count=6", http.StatusBadRequest},
		{"zero count", "/references/numeric?length=4&count=0", http.StatusBadRequest},
		{"non-integer count", "/references/numeric?length=4&count=x", http.StatusBadRequest},
		{"unknown route", "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, decodeGenerate(t, rec).Error)
		})
	}

	t.Run("guid ignores length limit", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/references/guid?length=999", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, h, http.MethodGet, "/references/guid?length=ten", nil)
		assert.Equal(t, http.StatusOK, rec.Code, "length is not parsed for guid")
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodDelete, "/guid", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestGenerate_DefaultLength(t *testing.T) {
	t.Parallel()

	rec := do(t, newRouter(api.RouterOptions{DefaultLength: 3}), http.MethodGet, "/references/numeric", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `^\d{3}$`, decodeGenerate(t, rec).References[0])
}

func TestGUID(t *testing.T) {
	t.Parallel()

	rec := do(t, newRouter(api.RouterOptions{}), http.MethodGet, "/guid", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		GUID string `json:"guid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NoError(t, reference.Validate(reference.GUID, body.GUID, 0, ""))
}

func TestValidate(t *testing.T) {
	t.Parallel()
	h := newRouter(api.RouterOptions{})

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantValid bool
	}{
		{"valid numeric", `{"kind":"numeric","reference":"REF-12345","length":5,"prefix":"REF-"}`, http.StatusOK, true},
		{"valid guid", `{"kind":"guid","reference":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`, http.StatusOK, true},
		{"wrong alphabet", `{"kind":"alphabetic","reference":"AB1","length":3}`, http.StatusUnprocessableEntity, false},
		{"wrong length", `{"kind":"secure","reference":"AB","length":3}`, http.StatusUnprocessableEntity, false},
		{"missing prefix", `{"kind":"numeric","reference":"12345","length":5,"prefix":"REF-"}`, http.StatusUnprocessableEntity, false},
		{"zero length", `{"kind":"numeric","reference":"1","length":0}`, http.StatusBadRequest, false},
		{"unknown kind", `{"kind":"hex","reference":"AB","length":2}`, http.StatusBadRequest, false},
		{"missing kind", `{"reference":"AB","length":2}`, http.StatusBadRequest, false},
		{"unknown field", `{"kind":"numeric","reference":"1","length":1,"extra":true}`, http.StatusBadRequest, false},
		{"malformed json", `{"kind":`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodPost, "/references/validate", strings.NewReader(tt.body))
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			var body struct {
				Valid bool   `json:"valid"`
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantValid, body.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	healthy := newRouter(api.RouterOptions{})
	rec := do(t, healthy, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = do(t, healthy, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	broken := newRouter(api.RouterOptions{
		Generator: reference.New(reference.WithSecureReader(iotest.ErrReader(io.ErrUnexpectedEOF))),
	})
	rec = do(t, broken, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())
}

func TestPanicRecovered(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h := newRouter(api.RouterOptions{
		Generator: reference.New(reference.WithSecureReader(iotest.ErrReader(io.ErrUnexpectedEOF))),
		Logger:    logger.New(logger.WithOutput(buf)),
	})

	rec := do(t, h, http.MethodGet, "/references/secure?length=4", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "internal server error", decodeGenerate(t, rec).Error)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "handler panicked", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Contains(t, entry["error"], reference.ErrEntropyUnavailable.Error())
	assert.Equal(t, "/references/secure", entry["path"])
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	h := newRouter(api.RouterOptions{})

	t.Run("generated when missing", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/guid", nil)
		id := rec.Header().Get(api.RequestIDHeader)
		assert.NoError(t, reference.Validate(reference.GUID, id, 0, ""))
	})

	t.Run("kept when valid", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/guid", nil)
		req.Header.Set(api.RequestIDHeader, "req_123-abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "req_123-abc", rec.Header().Get(api.RequestIDHeader))
	})

	t.Run("replaced when invalid", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"has space", "<script>", strings.Repeat("a", 129)} {
			req := httptest.NewRequest(http.MethodGet, "/guid", nil)
			req.Header.Set(api.RequestIDHeader, bad)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			got := rec.Header().Get(api.RequestIDHeader)
			assert.NotEqual(t, bad, got)
			assert.NotEmpty(t, got)
		}
	})

	t.Run("propagated to logs", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithContextExtractors(api.RequestIDExtractor),
		)
		h := newRouter(api.RouterOptions{Logger: log})

		req := httptest.NewRequest(http.MethodGet, "/references/numeric?length=4", nil)
		req.Header.Set(api.RequestIDHeader, "trace-42")
		h.ServeHTTP(httptest.NewRecorder(), req)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
		assert.Equal(t, "references generated", entry["msg"])
		assert.Equal(t, "trace-42", entry["request_id"])
		assert.Equal(t, "numeric", entry["kind"])
	})
}
