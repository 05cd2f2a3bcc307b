package gameapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/testutil"
)

func newTestClient(serverURL string) *Client {
	cfg := Config{PublicAPIURL: serverURL}
	return New(cfg, testutil.NopLogger())
}

func TestUsersFetchesCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]model.PlayerRecord{
			{ID: "1", Name: "A", PlayMoney: 100, RealMoney: 0.5, Role: model.RolePlayer},
		})
	}))
	defer srv.Close()

	users, err := newTestClient(srv.URL).Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, model.RecordID("1"), users[0].ID)
	assert.Equal(t, 100.0, users[0].PlayMoney)
}

func TestUsersEmptyBodyYieldsEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	users, err := newTestClient(srv.URL).Users(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUsersWithoutBaseURLDegradesToEmpty(t *testing.T) {
	client := New(Config{}, testutil.NopLogger())

	users, err := client.Users(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMutationWithoutBaseURLFails(t *testing.T) {
	client := New(Config{}, testutil.NopLogger())

	err := client.SetRole(context.Background(), "1", model.RoleModerator)
	assert.ErrorIs(t, err, model.ErrNoBaseURL)
}

func TestInternalURLPreferredOverPublic(t *testing.T) {
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer internal.Close()

	cfg := Config{InternalAPIURL: internal.URL, PublicAPIURL: "http://public.invalid"}
	client := New(cfg, testutil.NopLogger())

	_, err := client.Users(context.Background())
	require.NoError(t, err)
}

func TestErrorPayloadMessageExtracted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"amount too large"}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).GrantReward(context.Background(), "42", 1e12)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "amount too large", apiErr.Message)
}

func TestErrorWithoutPayloadFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SetRole(context.Background(), "1", model.RolePlayer)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "HTTP 500")
}

func TestSetRolePostsRoleBody(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/7/role", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SetRole(context.Background(), "7", model.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, "MODERATOR", got["role"])
}

func TestSaveAssetsReturnsNormalizedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var doc model.AssetConfig
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		doc.CardBackURL = "https://cdn.example/normalized.png"
		_ = json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()

	saved, err := newTestClient(srv.URL).SaveAssets(context.Background(), &model.AssetConfig{
		CardBackURL: "https://cdn.example/back.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/normalized.png", saved.CardBackURL)
}
