package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuthFlow covers the whole token lifecycle over HTTP: register, login,
// refresh with rotation, logout.
func TestAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	s := app.registerUser(t)
	require.NotEmpty(t, s.AccessToken)
	require.NotEmpty(t, s.RefreshToken)

	// The access token works on a protected route.
	resp := app.doAuthed(t, s, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Refresh rotates the pair.
	body, _ := json.Marshal(map[string]string{"refresh_token": s.RefreshToken})
	resp, err := app.Client.Post(app.Server.URL+"/api/auth/refresh", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	refreshed := decodeBody[authResponse](t, resp)
	assert.NotEqual(t, s.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was revoked by the rotation.
	resp, err = app.Client.Post(app.Server.URL+"/api/auth/refresh", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Logout revokes the rotated token too.
	body, _ = json.Marshal(map[string]string{"refresh_token": refreshed.RefreshToken})
	resp, err = app.Client.Post(app.Server.URL+"/api/auth/logout", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Client.Post(app.Server.URL+"/api/auth/refresh", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// The revocation is recorded, not deleted.
	var isRevoked bool
	err = app.DB.QueryRow("SELECT is_revoked FROM refresh_tokens WHERE token=$1", refreshed.RefreshToken).Scan(&isRevoked)
	require.NoError(t, err)
	assert.True(t, isRevoked)
}

func TestRefresh_UnknownTokenRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	body, _ := json.Marshal(map[string]string{"refresh_token": "never-issued"})
	resp, err := app.Client.Post(app.Server.URL+"/api/auth/refresh", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := app.Client.Get(app.Server.URL + "/api/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodGet, app.Server.URL+"/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	payload := map[string]string{
		"email":      "dup@example.com",
		"username":   "dup",
		"first_name": "Du",
		"last_name":  "Plicate",
		"password":   "long enough password",
	}
	body, _ := json.Marshal(payload)
	resp, err := app.Client.Post(app.Server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	body, _ = json.Marshal(payload)
	resp, err = app.Client.Post(app.Server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
