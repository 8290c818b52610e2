package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/alerts"
	"github.com/rogerio-castellano/inventario-api/internal/auth"
	api "github.com/rogerio-castellano/inventario-api/internal/http"
	"github.com/rogerio-castellano/inventario-api/internal/http/ban"
	handler "github.com/rogerio-castellano/inventario-api/internal/http/handlers"
	"github.com/rogerio-castellano/inventario-api/internal/repo"
	"github.com/rogerio-castellano/inventario-api/internal/settings"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminUser     = "admin"
	adminPassword = "secret123"
)

// today is the fixed clock the alert endpoints are evaluated against.
var today = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

var (
	token        string
	productRepo  *repo.InMemoryProductRepository
	contactRepo  *repo.InMemoryContactRepository
	configRepo   *repo.InMemoryConfigurationRepository
	userRepo     *repo.InMemoryUserRepository
	banStore     *ban.MemoryStore
	authService  *auth.AuthService
	testHandlers *handler.Handler
)

func init() {
	setupTestRepos()
	r := newRouter(api.Options{})

	var err error
	token, err = generateToken(r, adminUser, adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	contactRepo = repo.NewInMemoryContactRepository()
	configRepo = repo.NewInMemoryConfigurationRepository()
	userRepo = repo.NewInMemoryUserRepository()
	banStore = ban.NewMemoryStore(ban.Policy{MaxStrikes: 3, BanDuration: time.Minute})

	authService = auth.NewAuthService(userRepo, auth.NewTokens("test-secret", time.Minute), auth.NewPasswords(bcrypt.MinCost))
	if _, err := authService.Register(context.Background(), adminUser, "Administrador", adminPassword); err != nil {
		panic(fmt.Sprintf("error creating admin: %v", err))
	}

	testHandlers = handler.New(handler.Deps{
		Products: productRepo,
		Contacts: contactRepo,
		Settings: settings.NewService(configRepo),
		Alerts: alerts.NewService(productRepo, configRepo,
			alerts.WithClock(func() time.Time { return today }),
			alerts.WithLocation(time.UTC)),
		Auth: authService,
		Bans: banStore,
	})
}

func newRouter(opts api.Options) http.Handler {
	return api.NewRouter(testHandlers, opts)
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllContacts() {
	contactRepo.Clear()
}

func clearConfiguration() {
	configRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	w := doJSON(r, http.MethodPost, "/api/login", "", handler.UserLogin{Username: username, Password: password})
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doJSON sends body as JSON, with a bearer token when bearer is not empty.
func doJSON(r http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p any) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/productos", token, p)
}

func createContact(r http.Handler, c any) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/contactos", token, c)
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}
