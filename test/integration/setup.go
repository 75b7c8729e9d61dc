package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/BG-legacy/HabitChain-sub001/internal/adapters/handler/http"
	repo "github.com/BG-legacy/HabitChain-sub001/internal/adapters/repository/postgres"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/services"
)

const (
	testJWTSecret   = "integration-test-secret"
	testJWTIssuer   = "habitchain"
	testJWTAudience = "habitchain-web"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))

	userRepo := repo.NewUserRepository(db)
	authRepo := repo.NewAuthRepository(db)
	habitRepo := repo.NewHabitRepository(db)
	checkInRepo := repo.NewCheckInRepository(db)
	badgeRepo := repo.NewBadgeRepository(db)
	encouragementRepo := repo.NewEncouragementRepository(db)

	tokenSvc, err := services.NewTokenService(authRepo, testJWTSecret, testJWTIssuer, testJWTAudience, time.Hour, 7*24*time.Hour)
	require.NoError(t, err)
	authSvc := services.NewAuthService(userRepo, authRepo, tokenSvc)
	badgeSvc := services.NewBadgeService(userRepo, habitRepo, badgeRepo)
	habitSvc := services.NewHabitService(habitRepo)
	checkInSvc := services.NewCheckInService(habitRepo, checkInRepo, badgeSvc)
	encouragementSvc := services.NewEncouragementService(encouragementRepo, userRepo)
	userSvc := services.NewUserService(userRepo)

	router := handler.NewHandler(
		tokenSvc,
		handler.NewAuthHandler(authSvc),
		handler.NewUserHandler(userSvc, badgeSvc),
		handler.NewHabitHandler(habitSvc),
		handler.NewCheckInHandler(checkInSvc),
		handler.NewBadgeHandler(badgeSvc),
		handler.NewEncouragementHandler(encouragementSvc),
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

type session struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
}

type authResponse struct {
	User *struct {
		ID uuid.UUID `json:"id"`
	} `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// registerUser signs up a fresh user through the API and returns a live session.
func (app *TestApp) registerUser(t *testing.T) *session {
	t.Helper()

	suffix := uuid.New().String()[:8]
	payload := map[string]string{
		"email":      fmt.Sprintf("user-%s@example.com", suffix),
		"username":   fmt.Sprintf("user-%s", suffix),
		"first_name": "Test",
		"last_name":  "User",
		"password":   "long enough password",
	}
	body, _ := json.Marshal(payload)

	resp, err := app.Client.Post(app.Server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var auth authResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	require.NotNil(t, auth.User)

	return &session{
		UserID:       auth.User.ID,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
	}
}

// doAuthed sends an authenticated JSON request as the given session.
func (app *TestApp) doAuthed(t *testing.T, s *session, method, path string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.AccessToken)

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
