package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
)

func TestHabitCRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	s := app.registerUser(t)

	// Create
	resp := app.doAuthed(t, s, http.MethodPost, "/api/habits", map[string]string{
		"name":        "morning run",
		"description": "5k before work",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	habit := decodeBody[domain.Habit](t, resp)
	assert.Equal(t, "morning run", habit.Name)
	assert.Equal(t, domain.FrequencyDaily, habit.Frequency)
	assert.Equal(t, 0, habit.CurrentStreak)

	// List
	resp = app.doAuthed(t, s, http.MethodGet, "/api/habits", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	habits := decodeBody[[]domain.Habit](t, resp)
	require.Len(t, habits, 1)

	// Update
	resp = app.doAuthed(t, s, http.MethodPut, "/api/habits/"+habit.ID.String(), map[string]string{
		"name": "evening run",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[domain.Habit](t, resp)
	assert.Equal(t, "evening run", updated.Name)
	assert.Equal(t, "5k before work", updated.Description)

	// Archive
	resp = app.doAuthed(t, s, http.MethodDelete, "/api/habits/"+habit.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = app.doAuthed(t, s, http.MethodGet, "/api/habits/"+habit.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	archived := decodeBody[domain.Habit](t, resp)
	assert.True(t, archived.IsArchived)
}

func TestHabit_IsolatedBetweenUsers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	owner := app.registerUser(t)
	other := app.registerUser(t)

	resp := app.doAuthed(t, owner, http.MethodPost, "/api/habits", map[string]string{"name": "meditate"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	habit := decodeBody[domain.Habit](t, resp)

	// Another user cannot see or touch it.
	resp = app.doAuthed(t, other, http.MethodGet, "/api/habits/"+habit.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = app.doAuthed(t, other, http.MethodDelete, "/api/habits/"+habit.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = app.doAuthed(t, other, http.MethodGet, "/api/habits", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	habits := decodeBody[[]domain.Habit](t, resp)
	assert.Empty(t, habits)
}
