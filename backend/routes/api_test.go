package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"momentum/backend/challenge"
	"momentum/backend/config"
	"momentum/backend/progress"
	"momentum/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *progress.Service) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "testsecret",
		Timezone:  "UTC",
	}

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(utils.AllModels()...))

	logger := log.New(io.Discard, "", 0)
	engine := progress.NewService(db, challenge.Catalog{}, time.UTC, logger)
	engine.Now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}

	app := fiber.New()
	SetupRoutes(app, db, cfg, engine)
	return app, db, engine
}

func jsonRequest(method, target, token string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterAndLogin(t *testing.T) {
	app, _, _ := newTestApp(t)
	registerUser(t, app, "alice")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "password123",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	resp, err = app.Test(jsonRequest("POST", "/api/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "wrong",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestChallengesRequireAuth(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/challenges/", "", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListWeeksWithUnlockState(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := registerUser(t, app, "bob")

	resp, err := app.Test(jsonRequest("GET", "/api/challenges/", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	weeks, ok := body["weeks"].([]interface{})
	require.True(t, ok)
	require.Len(t, weeks, 12)

	first := weeks[0].(map[string]interface{})
	assert.Equal(t, true, first["unlocked"])
	second := weeks[1].(map[string]interface{})
	assert.Equal(t, false, second["unlocked"])
}

func TestGetWeekAndDay(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := registerUser(t, app, "carol")

	resp, err := app.Test(jsonRequest("GET", "/api/challenges/1", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/challenges/99", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/challenges/1/3", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotNil(t, body["challenge"])
	assert.NotNil(t, body["mantra"])
	assert.NotNil(t, body["prompt"])

	resp, err = app.Test(jsonRequest("GET", "/api/challenges/1/8", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProgressFlowUnlocksNextWeek(t *testing.T) {
	app, _, engine := newTestApp(t)
	token := registerUser(t, app, "dave")

	for day := 1; day <= 7; day++ {
		d := day
		engine.Now = func() time.Time {
			return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
		}
		url := fmt.Sprintf("/api/challenges/1/%d", day)
		resp, err := app.Test(jsonRequest("POST", url, token, fiber.Map{"notes": "done"}), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest("GET", "/api/challenges/", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	weeks := decodeBody(t, resp)["weeks"].([]interface{})
	second := weeks[1].(map[string]interface{})
	assert.Equal(t, true, second["unlocked"])
	third := weeks[2].(map[string]interface{})
	assert.Equal(t, false, third["unlocked"])

	resp, err = app.Test(jsonRequest("GET", "/api/user/statistics", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats := decodeBody(t, resp)
	assert.EqualValues(t, 7, stats["current_streak"])
	assert.EqualValues(t, 7, stats["longest_streak"])
	assert.EqualValues(t, 7, stats["total_entries"])
	assert.EqualValues(t, 1, stats["completed_weeks"])
}

func TestSubmitProgressValidation(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := registerUser(t, app, "erin")

	resp, err := app.Test(jsonRequest("POST", "/api/challenges/0/1", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/challenges/1/0", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Empty body is allowed, notes are optional.
	resp, err = app.Test(httptest.NewRequest("POST", "/api/challenges/1/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMoodUpsert(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := registerUser(t, app, "frank")

	resp, err := app.Test(jsonRequest("POST", "/api/mood/", token, fiber.Map{
		"mood_id": "great",
		"date":    "2026-03-10",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/mood/", token, fiber.Map{
		"mood_id": "tired",
		"date":    "2026-03-10",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/mood/2026-03-10", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	mood := decodeBody(t, resp)["mood"].(map[string]interface{})
	assert.Equal(t, "tired", mood["MoodID"])

	resp, err = app.Test(jsonRequest("GET", "/api/mood/2026-03-11", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, decodeBody(t, resp)["mood"])

	resp, err = app.Test(jsonRequest("GET", "/api/mood/not-a-date", token, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMoodDefaultDateFollowsClock(t *testing.T) {
	app, _, engine := newTestApp(t)
	token := registerUser(t, app, "ivan")

	engine.Now = func() time.Time {
		return time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	}

	// No date in the body: the entry lands on the clock's calendar day.
	resp, err := app.Test(jsonRequest("POST", "/api/mood/", token, fiber.Map{
		"mood_id": "focused",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/mood/2026-04-01", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	mood := decodeBody(t, resp)["mood"].(map[string]interface{})
	assert.Equal(t, "focused", mood["MoodID"])

	resp, err = app.Test(jsonRequest("GET", "/api/mood/", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	mood = decodeBody(t, resp)["mood"].(map[string]interface{})
	assert.Equal(t, "2026-04-01", mood["Date"])
}

func TestProfileUpdate(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := registerUser(t, app, "grace")

	resp, err := app.Test(jsonRequest("PUT", "/api/user/profile", token, fiber.Map{
		"first_name": "Grace",
		"last_name":  "Hopper",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/user/profile", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	user := decodeBody(t, resp)["user"].(map[string]interface{})
	assert.Equal(t, "Grace", user["first_name"])
	assert.Equal(t, "Hopper", user["last_name"])
	assert.Equal(t, "grace", user["username"])
}

func TestBadgeListForNewUser(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := registerUser(t, app, "heidi")

	resp, err := app.Test(jsonRequest("GET", "/api/badges", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	badges := decodeBody(t, resp)["badges"].([]interface{})
	require.Len(t, badges, 17)
	for _, b := range badges {
		assert.Equal(t, false, b.(map[string]interface{})["earned"])
	}
}
