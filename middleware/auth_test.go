package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/padel-live/models"
)

type parserFunc func(string) (*models.Session, error)

func (f parserFunc) ParseSession(token string) (*models.Session, error) { return f(token) }

var testParser = parserFunc(func(token string) (*models.Session, error) {
	if token == "valid" {
		return &models.Session{Subject: "user-1", AccessToken: "backend-token"}, nil
	}
	return nil, errors.New("invalid")
})

func captureSession(t *testing.T) (http.Handler, **models.Session) {
	t.Helper()
	var got *models.Session
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	return h, &got
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		prepare func(r *http.Request)
		subject string
	}{
		{"anonymous", func(r *http.Request) {}, ""},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid"}) }, "user-1"},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer valid") }, "user-1"},
		{"invalid cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"}) }, ""},
		{"basic auth ignored", func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, got := captureSession(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.prepare(req)
			rec := httptest.NewRecorder()

			Authenticate(testParser)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			if tc.subject == "" {
				assert.Nil(t, *got)
				return
			}
			require.NotNil(t, *got)
			assert.Equal(t, tc.subject, (*got).Subject)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	next, _ := captureSession(t)
	handler := Authenticate(testParser)(RequireAuth(next))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBackendTokenFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, BackendTokenFromContext(req.Context()))

	ctx := WithSession(req.Context(), &models.Session{Subject: "user-1", AccessToken: "tok"})
	assert.Equal(t, "tok", BackendTokenFromContext(ctx))
}
