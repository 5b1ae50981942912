package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/AnshRaj112/todak-backend/internal/database"
	"github.com/AnshRaj112/todak-backend/internal/handlers"
	"github.com/AnshRaj112/todak-backend/internal/models"
	"github.com/AnshRaj112/todak-backend/internal/routes"
	"github.com/AnshRaj112/todak-backend/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (chi.Router, *database.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return routes.NewRouter(handlers.New(db, nil), routes.Options{AllowedOrigins: []string{"*"}}), db
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest(method, path, body))
	return w
}

func TestHealth(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSignupLoginFlow(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodGet, "/check-id?id=mina", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"available":true}`, w.Body.String())

	w = do(r, http.MethodPost, "/signup", models.SignupRequest{ID: "mina", Password: "pw1", Nickname: "Mina"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	assert.NotContains(t, w.Body.String(), "password")
	var user models.User
	testutil.AssertJSON(t, w, &user)
	assert.Equal(t, "mina", user.ID)
	assert.Equal(t, "Mina", user.Nickname)
	assert.False(t, user.HasSeenGuide)
	assert.WithinDuration(t, time.Now(), user.StartDate, time.Minute)

	w = do(r, http.MethodPost, "/signup", models.SignupRequest{ID: "mina", Password: "other", Nickname: "Imposter"})
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	assert.JSONEq(t, `{"detail":"User already exists"}`, w.Body.String())

	w = do(r, http.MethodGet, "/check-id?id=mina", nil)
	assert.JSONEq(t, `{"available":false}`, w.Body.String())

	w = do(r, http.MethodPost, "/login", models.LoginRequest{ID: "mina", Password: "pw1"})
	testutil.AssertStatus(t, w, http.StatusOK)
	var loggedIn models.User
	testutil.AssertJSON(t, w, &loggedIn)
	assert.Equal(t, "Mina", loggedIn.Nickname, "failed signup must not overwrite the user")

	wrongPassword := do(r, http.MethodPost, "/login", models.LoginRequest{ID: "mina", Password: "other"})
	unknownUser := do(r, http.MethodPost, "/login", models.LoginRequest{ID: "ghost", Password: "pw1"})
	testutil.AssertStatus(t, wrongPassword, http.StatusUnauthorized)
	testutil.AssertStatus(t, unknownUser, http.StatusUnauthorized)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestInvalidBodies(t *testing.T) {
	r, _ := setup(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"malformed signup", http.MethodPost, "/signup", "{"},
		{"signup without password", http.MethodPost, "/signup", map[string]string{"id": "a", "nickname": "b"}},
		{"login without id", http.MethodPost, "/login", map[string]string{"password": "x"}},
		{"check-id without id", http.MethodGet, "/check-id", nil},
		{"bad mood date", http.MethodPost, "/users/mina/moods", map[string]string{"date": "2024/01/15"}},
		{"bad mood id", http.MethodDelete, "/users/mina/moods/abc", nil},
		{"bad period type", http.MethodGet, "/users/mina/reviews?periodType=daily&periodKey=x", nil},
		{"bad reminder", http.MethodPost, "/users/mina/reminder", map[string]string{"reminderTime": "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.NotEmpty(t, resp.Detail)
		})
	}
}

func TestUserRoutes(t *testing.T) {
	r, db := setup(t)
	testutil.CreateTestUser(t, db, "mina", "pw")

	w := do(r, http.MethodGet, "/users/ghost", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	assert.JSONEq(t, `{"detail":"User not found"}`, w.Body.String())

	w = do(r, http.MethodPatch, "/users/mina/guide", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var user models.User
	testutil.AssertJSON(t, w, &user)
	assert.True(t, user.HasSeenGuide)

	w = do(r, http.MethodPatch, "/users/ghost/guide", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	do(r, http.MethodPost, "/users/mina/moods", models.SaveMoodRequest{Date: "2024-01-15", Content: "ok"})
	do(r, http.MethodPost, "/users/mina/reminder", models.SaveReminderRequest{ReminderTime: "21:30"})

	w = do(r, http.MethodDelete, "/users/mina", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"status":"deleted"}`, w.Body.String())
	assert.Equal(t, 0, testutil.CountRows(t, db, "moods", "mina"))
	assert.Equal(t, 0, testutil.CountRows(t, db, "user_reminders", "mina"))

	w = do(r, http.MethodGet, "/users/mina", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	w = do(r, http.MethodDelete, "/users/mina", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestMoodRoutes(t *testing.T) {
	r, db := setup(t)
	testutil.CreateTestUser(t, db, "mina", "pw")

	w := do(r, http.MethodGet, "/users/mina/moods", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(r, http.MethodPost, "/users/ghost/moods", models.SaveMoodRequest{Date: "2024-01-15"})
	testutil.AssertStatus(t, w, http.StatusNotFound)

	w = do(r, http.MethodPost, "/users/mina/moods", map[string]interface{}{
		"date":            "2024-01-16",
		"emotionIds":      []string{"calm"},
		"content":         "second",
		"recommendations": []map[string]string{{"type": "music", "id": "42"}},
		"timestamp":       1705400000000,
	})
	testutil.AssertStatus(t, w, http.StatusOK)
	var saved models.MoodEntry
	testutil.AssertJSON(t, w, &saved)
	assert.Equal(t, int64(1705400000000), saved.Timestamp)
	assert.Nil(t, saved.AIMessage)
	require.Len(t, saved.Recommendations, 1)
	assert.Equal(t, "music", saved.Recommendations[0]["type"])

	w = do(r, http.MethodPost, "/users/mina/moods", map[string]interface{}{
		"date": "2024-01-15", "emotionIds": []string{"sad"}, "aiMessage": "take care",
	})
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"aiMessage":"take care"`)

	// same date replaces the entry in place
	w = do(r, http.MethodPost, "/users/mina/moods", map[string]interface{}{
		"date": "2024-01-16", "emotionIds": []string{"happy"},
	})
	var replaced models.MoodEntry
	testutil.AssertJSON(t, w, &replaced)
	assert.Equal(t, saved.ID, replaced.ID)
	assert.Equal(t, []string{"happy"}, replaced.EmotionIDs)
	assert.NotContains(t, w.Body.String(), "aiMessage")

	w = do(r, http.MethodGet, "/users/mina/moods", nil)
	var moods []models.MoodEntry
	testutil.AssertJSON(t, w, &moods)
	require.Len(t, moods, 2)
	assert.Equal(t, "2024-01-15", moods[0].Date)
	assert.Equal(t, "2024-01-16", moods[1].Date)

	w = do(r, http.MethodDelete, "/users/ghost/moods/"+strconv.FormatInt(saved.ID, 10), nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	assert.JSONEq(t, `{"detail":"Mood not found"}`, w.Body.String())

	w = do(r, http.MethodDelete, "/users/mina/moods/"+strconv.FormatInt(saved.ID, 10), nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"status":"deleted"}`, w.Body.String())

	w = do(r, http.MethodDelete, "/users/mina/moods/"+strconv.FormatInt(saved.ID, 10), nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	assert.Equal(t, 1, testutil.CountRows(t, db, "moods", "mina"))
}

func TestReviewAndReminderRoutes(t *testing.T) {
	r, db := setup(t)
	testutil.CreateTestUser(t, db, "mina", "pw")

	w := do(r, http.MethodGet, "/users/mina/reviews?periodType=weekly&periodKey=2024-W03", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"review":null}`, w.Body.String())

	w = do(r, http.MethodPost, "/users/mina/reviews", models.SaveReviewRequest{
		PeriodType: "weekly", PeriodKey: "2024-W03", Content: "steady",
	})
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"review":{"periodType":"weekly","periodKey":"2024-W03","content":"steady","lastMoodTimestamp":0}}`, w.Body.String())

	w = do(r, http.MethodGet, "/users/mina/reviews?periodType=weekly&periodKey=2024-W03", nil)
	assert.Contains(t, w.Body.String(), `"content":"steady"`)

	w = do(r, http.MethodPost, "/users/ghost/reviews", models.SaveReviewRequest{
		PeriodType: "monthly", PeriodKey: "2024-01", Content: "x",
	})
	testutil.AssertStatus(t, w, http.StatusNotFound)

	w = do(r, http.MethodGet, "/users/mina/reminder", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"reminderTime":null}`, w.Body.String())

	w = do(r, http.MethodPost, "/users/mina/reminder", models.SaveReminderRequest{ReminderTime: "21:30"})
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"reminderTime":"21:30"}`, w.Body.String())

	w = do(r, http.MethodGet, "/users/mina/reminder", nil)
	assert.JSONEq(t, `{"reminderTime":"21:30"}`, w.Body.String())

	w = do(r, http.MethodPost, "/users/ghost/reminder", models.SaveReminderRequest{ReminderTime: "21:30"})
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUnknownRoute(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
}

func TestSignup_KeepsIDVerbatim(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodPost, "/signup", models.SignupRequest{ID: " bob ", Password: "pw", Nickname: "Bob"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	assert.Contains(t, w.Body.String(), `"id":" bob "`)

	w = do(r, http.MethodGet, "/users/%20bob%20", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var user models.User
	testutil.AssertJSON(t, w, &user)
	assert.Equal(t, " bob ", user.ID)

	w = do(r, http.MethodPost, "/login", models.LoginRequest{ID: " bob ", Password: "pw"})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do(r, http.MethodPost, "/signup", models.SignupRequest{ID: "bob", Password: "pw", Nickname: "Other"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = do(r, http.MethodPost, "/signup", models.SignupRequest{ID: "   ", Password: "pw", Nickname: "Blank"})
	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
}

func TestSaveMood_RecommendationsRoundTripExactly(t *testing.T) {
	r, db := setup(t)
	testutil.CreateTestUser(t, db, "mina", "pw")

	w := do(r, http.MethodPost, "/users/mina/moods",
		`{"date":"2024-01-15","emotionIds":[],"content":"","recommendations":[{"id":12345678901234567,"type":"music"}]}`)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"id":12345678901234567`)

	w = do(r, http.MethodGet, "/users/mina/moods", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"id":12345678901234567`)
}

func TestSaveMood_DateOnlyBodyUsesDefaults(t *testing.T) {
	r, db := setup(t)
	testutil.CreateTestUser(t, db, "mina", "pw")

	w := do(r, http.MethodPost, "/users/mina/moods", `{"date":"2024-01-15"}`)
	testutil.AssertStatus(t, w, http.StatusOK)
	var mood models.MoodEntry
	testutil.AssertJSON(t, w, &mood)
	assert.Equal(t, []string{}, mood.EmotionIDs)
	assert.Equal(t, "", mood.Content)
	assert.Empty(t, mood.Recommendations)
	assert.Nil(t, mood.AIMessage)
}
