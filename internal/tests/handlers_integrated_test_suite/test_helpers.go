//go:build integration

package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/alerts"
	"github.com/rogerio-castellano/inventario-api/internal/auth"
	"github.com/rogerio-castellano/inventario-api/internal/db"
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

var (
	token    string
	database *sql.DB
	router   http.Handler
)

func setup(databaseURL string) error {
	var err error
	database, err = db.Connect(context.Background(), databaseURL, "")
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	if err := db.MigrateUp(database); err != nil {
		return err
	}

	truncateAll()

	products := repo.NewPostgresProductRepository(database)
	configs := repo.NewPostgresConfigurationRepository(database)
	authService := auth.NewAuthService(
		repo.NewPostgresUserRepository(database),
		auth.NewTokens("integration-secret", time.Minute),
		auth.NewPasswords(bcrypt.MinCost),
	)
	if _, err := authService.Register(context.Background(), adminUser, "Administrador", adminPassword); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	router = api.NewRouter(handler.New(handler.Deps{
		Products: products,
		Contacts: repo.NewPostgresContactRepository(database),
		Settings: settings.NewService(configs),
		Alerts:   alerts.NewService(products, configs, alerts.WithLocation(time.UTC)),
		Auth:     authService,
		Bans:     ban.NewMemoryStore(ban.Policy{}),
	}), api.Options{})

	token, err = generateToken(adminUser, adminPassword)
	return err
}

func exec(query string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := database.ExecContext(ctx, query); err != nil {
		fmt.Println(fmt.Errorf("failed to run %q: %w", query, err))
	}
}

func truncateAll() {
	exec("TRUNCATE TABLE productos, contactos, configuracion, usuarios")
}

func clearAllProducts() {
	exec("TRUNCATE TABLE productos")
}

func clearAllContacts() {
	exec("TRUNCATE TABLE contactos")
}

func clearConfiguration() {
	exec("TRUNCATE TABLE configuracion")
}

func generateToken(username, password string) (string, error) {
	w := doJSON(http.MethodPost, "/api/login", "", handler.UserLogin{Username: username, Password: password})
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(method, path, bearer string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
