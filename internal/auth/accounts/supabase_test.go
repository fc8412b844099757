package accounts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeGoTrue(t *testing.T) (*httptest.Server, *SupabaseClient) {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "test-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["email"] == "known@line.local" && body["password"] == "secret" {
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "jwt-abc",
				"user":         map[string]string{"id": "acc-1", "email": body["email"]},
			})
			return
		}

		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	})

	mux.HandleFunc("POST /auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch body["email"] {
		case "known@line.local":
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{
				"error_code": "user_already_exists",
				"msg":        "User already registered",
			})
		case "pending@line.local":
			// confirmation required: bare user object, no session
			json.NewEncoder(w).Encode(map[string]string{
				"id":    "acc-9",
				"email": "pending@line.local",
			})
		default:
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "jwt-new",
				"user":         map[string]any{"id": "acc-2", "email": body["email"]},
			})
		}
	})

	mux.HandleFunc("GET /auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer jwt-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"msg": "invalid token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "acc-1", "email": "known@line.local"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, NewSupabaseClient(srv.URL, "test-key")
}

func TestSignInSuccess(t *testing.T) {
	_, client := newFakeGoTrue(t)

	acc, err := client.SignIn(context.Background(), "known@line.local", "secret")
	require.NoError(t, err)

	assert.Equal(t, "acc-1", acc.ID)
	assert.Equal(t, "jwt-abc", acc.AccessToken)
}

func TestSignInInvalidCredentials(t *testing.T) {
	_, client := newFakeGoTrue(t)

	_, err := client.SignIn(context.Background(), "known@line.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpSuccess(t *testing.T) {
	_, client := newFakeGoTrue(t)

	acc, err := client.SignUp(context.Background(), "new@line.local", "secret", map[string]any{
		"provider": "line",
	})
	require.NoError(t, err)

	assert.Equal(t, "acc-2", acc.ID)
	assert.Equal(t, "jwt-new", acc.AccessToken)
}

func TestSignUpConflict(t *testing.T) {
	_, client := newFakeGoTrue(t)

	_, err := client.SignUp(context.Background(), "known@line.local", "secret", nil)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestSignUpConfirmationPendingHasNoSession(t *testing.T) {
	_, client := newFakeGoTrue(t)

	acc, err := client.SignUp(context.Background(), "pending@line.local", "secret", nil)
	require.NoError(t, err)

	assert.Equal(t, "acc-9", acc.ID)
	assert.Empty(t, acc.AccessToken)
}

func TestGetUser(t *testing.T) {
	_, client := newFakeGoTrue(t)

	user, err := client.GetUser(context.Background(), "jwt-abc")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", user.ID)

	_, err = client.GetUser(context.Background(), "garbage")
	assert.Error(t, err)
}
