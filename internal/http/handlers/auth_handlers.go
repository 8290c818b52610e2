package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/inventario-api/internal/apierror"
	"github.com/rogerio-castellano/inventario-api/internal/auth"
	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/rs/zerolog/log"
)

type contextKey string

const userKey = contextKey("user")

// UserFromContext returns the user attached by RequireAuth.
func UserFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok
}

func bearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAuth rejects requests without a valid bearer token for an active
// user and stores that user in the request context.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeUnauthorized(w, apierror.MsgUnauthorized)
			return
		}

		user, err := h.auth.Authenticate(r.Context(), token)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RegisterHandler godoc
// @Summary Register a new user
// @Description No token is issued; log in afterwards.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "New user"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !bindAndValidate(w, r, &req) {
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.FullName, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Usuario registrado exitosamente"})
}

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} apierror.APIError "Inactive user"
// @Failure 401 {object} apierror.APIError "Invalid credentials"
// @Failure 429 {object} apierror.APIError "Too many failed attempts"
// @Router /api/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds UserLogin
	if !bindAndValidate(w, r, &creds) {
		return
	}

	ip := clientIP(r)
	if h.bans != nil {
		banned, err := h.bans.Banned(r.Context(), ip)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if banned {
			log.Warn().Str("ip", ip).Msg("login attempt from banned client")
			writeError(w, http.StatusTooManyRequests, "Demasiados intentos fallidos, intente mas tarde")
			return
		}
	}

	result, err := h.auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) && h.bans != nil {
			strikes, serr := h.bans.Strike(r.Context(), ip)
			if serr != nil {
				log.Error().Err(serr).Str("ip", ip).Msg("failed to record login strike")
			} else {
				log.Warn().Str("ip", ip).Int("strikes", strikes).Msg("failed login")
			}
		}
		writeServiceError(w, r, err)
		return
	}

	if h.bans != nil {
		if err := h.bans.Forgive(r.Context(), ip); err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("failed to clear login strikes")
		}
	}

	writeJSON(w, http.StatusOK, LoginResult{
		Token:     result.Token,
		TokenType: "bearer",
		User: LoginUser{
			Username: result.User.Username,
			FullName: result.User.FullName,
		},
	})
}

// MeHandler godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/me [get]
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, apierror.MsgUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, MeResponse{
		Username: user.Username,
		FullName: user.FullName,
		Active:   user.Active,
	})
}
