package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"biotrack/internal/models"
	"biotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  int64
	signUpErr error
	signInU   models.User
	signInErr error

	lastSignUp     service.SignUpInput
	lastSignInMail string
	lastSignInPass string
}

func (m *mockAuth) SignUp(_ context.Context, in service.SignUpInput) (int64, error) {
	m.lastSignUp = in
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, email, password string) (models.User, error) {
	m.lastSignInMail = email
	m.lastSignInPass = password
	return m.signInU, m.signInErr
}

// mockSessions issues "tok-<id>" tokens and accepts only tokens it issued.
type mockSessions struct {
	issued   map[string]service.Session
	issueErr error
}

func newMockSessions() *mockSessions {
	return &mockSessions{issued: map[string]service.Session{}}
}

func (m *mockSessions) IssueSession(u models.User) (string, error) {
	if m.issueErr != nil {
		return "", m.issueErr
	}
	token := fmt.Sprintf("tok-%d", u.ID)
	m.issued[token] = service.Session{UserID: u.ID, UserName: u.Name}
	return token, nil
}

func (m *mockSessions) ParseSession(token string) (service.Session, error) {
	s, ok := m.issued[token]
	if !ok {
		return service.Session{}, service.ErrInvalidToken
	}
	return s, nil
}

type mockBiometrics struct {
	err      error
	calls    int
	lastUser int64
	lastIn   service.BiometricsInput
}

func (m *mockBiometrics) SaveBiometrics(_ context.Context, userID int64, in service.BiometricsInput) error {
	m.calls++
	m.lastUser = userID
	m.lastIn = in
	return m.err
}

type mockMeals struct {
	foods    []models.FoodItem
	foodsErr error

	logID    int64
	logErr   error
	logCalls int
	lastLog  service.MealInput

	deleteErr   error
	deleteCalls [][2]int64
	lastUser    int64
}

func (m *mockMeals) ListFoods(context.Context) ([]models.FoodItem, error) {
	return m.foods, m.foodsErr
}

func (m *mockMeals) LogMeal(_ context.Context, userID int64, in service.MealInput) (int64, error) {
	m.logCalls++
	m.lastUser = userID
	m.lastLog = in
	return m.logID, m.logErr
}

func (m *mockMeals) DeleteMeal(_ context.Context, userID, mealID int64) error {
	m.deleteCalls = append(m.deleteCalls, [2]int64{userID, mealID})
	return m.deleteErr
}

type mockReports struct {
	report   models.Report
	err      error
	lastUser int64
}

func (m *mockReports) GetReport(_ context.Context, userID int64) (models.Report, error) {
	m.lastUser = userID
	return m.report, m.err
}

// ---- Shared Test Helpers ----

const testCookie = "test_session"

func newTestHandler(s *service.Service) *Handler {
	gin.SetMode(gin.TestMode)
	if s.Sessions == nil {
		s.Sessions = newMockSessions()
	}
	return NewHandler(s, nil, CookieOptions{Name: testCookie, TTL: time.Hour})
}

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestHandler(s).InitRoutes()
}

// loggedIn registers a session for u with the mock and returns its cookie.
func loggedIn(s *service.Service, u models.User) *http.Cookie {
	token, _ := s.Sessions.IssueSession(u)
	return &http.Cookie{Name: testCookie, Value: token}
}

func doRequest(r http.Handler, method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
