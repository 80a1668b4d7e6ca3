package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuthRoundTrip(t *testing.T) {
	auth := NewAuth("test-secret")
	token, err := auth.SignToken("m1", time.Hour)
	require.NoError(t, err)

	var gotID string
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = MemberID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	auth.WithAuth(next).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, gotOK)
	require.Equal(t, "m1", gotID)
}

func TestAuthIgnoresInvalidToken(t *testing.T) {
	auth := NewAuth("test-secret")
	other := NewAuth("other-secret")
	token, err := other.SignToken("m1", time.Hour)
	require.NoError(t, err)

	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = MemberID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	auth.WithAuth(next).ServeHTTP(httptest.NewRecorder(), req)

	require.False(t, gotOK)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	auth := NewAuth("test-secret")
	token, err := auth.SignToken("m1", -time.Minute)
	require.NoError(t, err)

	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = MemberID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	auth.WithAuth(next).ServeHTTP(httptest.NewRecorder(), req)

	require.False(t, gotOK)
}

func TestRequireAuthBlocksAnonymous(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
