package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"biotrack/internal/models"
	"biotrack/internal/repository"
	"biotrack/internal/repository/db"
	"biotrack/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// appClient drives the full stack over HTTP with its own cookie jar.
type appClient struct {
	t    *testing.T
	base string
	http *http.Client
}

func newStack(t *testing.T) (*httptest.Server, *service.Service) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "app.db")
	sqlDB, err := db.InitDB(db.Options{Dialect: db.DialectSQLite, Path: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repos := repository.NewRepository(db.NewExecutor(sqlDB, db.DialectSQLite))
	services := service.NewService(repos, service.Options{
		SessionSecret: "integration-secret",
		SessionTTL:    time.Hour,
		BcryptCost:    bcrypt.MinCost,
	})
	h := NewHandler(services, nil, CookieOptions{Name: testCookie, TTL: time.Hour})

	srv := httptest.NewServer(h.InitRoutes())
	t.Cleanup(srv.Close)
	return srv, services
}

func newAppClient(t *testing.T, srv *httptest.Server) *appClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &appClient{
		t:    t,
		base: srv.URL,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (a *appClient) do(method, path string, form url.Values) (int, string, string) {
	a.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, a.base+path, body)
	require.NoError(a.t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := a.http.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp.StatusCode, resp.Header.Get("Location"), string(b)
}

func (a *appClient) signUpAndLogin(name, email, password string) {
	a.t.Helper()
	code, loc, _ := a.do(http.MethodPost, "/signup", url.Values{"name": {name}, "email": {email}, "password": {password}})
	require.Equal(a.t, http.StatusFound, code)
	require.Equal(a.t, "/login", loc)

	code, loc, _ = a.do(http.MethodPost, "/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(a.t, http.StatusFound, code)
	require.Equal(a.t, "/dashboard", loc)
}

func (a *appClient) report() models.Report {
	a.t.Helper()
	code, _, body := a.do(http.MethodGet, "/api/v1/reports", nil)
	require.Equal(a.t, http.StatusOK, code, body)
	var r models.Report
	require.NoError(a.t, json.Unmarshal([]byte(body), &r))
	return r
}

func foodID(t *testing.T, services *service.Service, name string) int64 {
	t.Helper()
	foods, err := services.ListFoods(context.Background())
	require.NoError(t, err)
	for _, f := range foods {
		if f.Name == name {
			return f.ID
		}
	}
	t.Fatalf("food %q not seeded", name)
	return 0
}

func TestScenario_SignUpToReports(t *testing.T) {
	srv, services := newStack(t)
	diana := newAppClient(t, srv)

	// Anonymous visitors are sent to login.
	code, loc, _ := diana.do(http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/login", loc)

	diana.signUpAndLogin("Diana", "diana@example.com", "pw1")

	code, _, body := diana.do(http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Welcome, Diana")

	// Duplicate email is a conflict.
	other := newAppClient(t, srv)
	code, _, body = other.do(http.MethodPost, "/signup", url.Values{"name": {"D2"}, "email": {"DIANA@example.com"}, "password": {"x"}})
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, body, "email already registered")

	// Wrong password re-renders login.
	code, _, body = other.do(http.MethodPost, "/login", url.Values{"email": {"diana@example.com"}, "password": {"nope"}})
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Invalid credentials")

	// Biometrics upsert keeps one row per user.
	code, loc, _ = diana.do(http.MethodPost, "/biometrics", url.Values{"height_cm": {"170"}, "weight_kg": {"65"}})
	require.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/reports", loc)
	code, _, _ = diana.do(http.MethodPost, "/biometrics", url.Values{"height_cm": {"170"}, "weight_kg": {"63.5"}, "goal": {"lose"}})
	require.Equal(t, http.StatusFound, code)

	code, _, _ = diana.do(http.MethodPost, "/biometrics", url.Values{"height_cm": {"abc"}, "weight_kg": {"63"}})
	assert.Equal(t, http.StatusBadRequest, code)

	r := diana.report()
	require.NotNil(t, r.Biometrics)
	assert.Equal(t, 63.5, r.Biometrics.WeightKg)
	assert.Equal(t, "lose", r.Biometrics.Goal)
	assert.Empty(t, r.Meals)

	// Six meals; only the five most recent are reported, newest first.
	apple := foodID(t, services, "Apple")
	for i := 1; i <= 6; i++ {
		eatenAt := time.Date(2026, 1, i, 12, 0, 0, 0, time.UTC).Format(models.TimestampLayout)
		code, loc, body = diana.do(http.MethodPost, "/meal", url.Values{
			"food_id":    {strconv.FormatInt(apple, 10)},
			"quantity_g": {strconv.Itoa(100 + i)},
			"eaten_at":   {eatenAt},
		})
		require.Equal(t, http.StatusFound, code, body)
		assert.Equal(t, "/reports", loc)
	}

	r = diana.report()
	require.Len(t, r.Meals, service.RecentMealsLimit)
	assert.Equal(t, "Apple", r.Meals[0].FoodName)
	assert.Equal(t, 106.0, r.Meals[0].QuantityG)
	assert.Equal(t, "2026-01-06 12:00:00", r.Meals[0].EatenAtString())
	assert.Equal(t, 102.0, r.Meals[4].QuantityG)

	code, _, body = diana.do(http.MethodGet, "/reports", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "2026-01-06 12:00:00")
	assert.NotContains(t, body, "2026-01-01 12:00:00")

	// Unknown food is rejected.
	code, _, _ = diana.do(http.MethodPost, "/meal", url.Values{"food_id": {"99999"}, "quantity_g": {"10"}})
	assert.Equal(t, http.StatusBadRequest, code)

	// Another user cannot delete Diana's meal.
	newest := r.Meals[0].ID
	other.signUpAndLogin("Mallory", "mallory@example.com", "pw2")
	code, loc, _ = other.do(http.MethodPost, "/meal/delete/"+strconv.FormatInt(newest, 10), nil)
	assert.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/reports", loc)
	assert.Len(t, diana.report().Meals, service.RecentMealsLimit)
	assert.Equal(t, newest, diana.report().Meals[0].ID)
	assert.Empty(t, other.report().Meals)

	// The owner can.
	code, _, _ = diana.do(http.MethodPost, "/meal/delete/"+strconv.FormatInt(newest, 10), nil)
	assert.Equal(t, http.StatusFound, code)
	r = diana.report()
	require.Len(t, r.Meals, service.RecentMealsLimit)
	assert.NotEqual(t, newest, r.Meals[0].ID)
	assert.Equal(t, "2026-01-01 12:00:00", r.Meals[4].EatenAtString())

	code, _, _ = diana.do(http.MethodPost, "/meal/delete/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Logout ends the session.
	code, loc, _ = diana.do(http.MethodGet, "/logout", nil)
	assert.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/", loc)
	code, loc, _ = diana.do(http.MethodGet, "/reports", nil)
	assert.Equal(t, http.StatusFound, code)
	assert.Equal(t, "/login", loc)
}
