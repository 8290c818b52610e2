package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/inventario-api/internal/apierror"
	"github.com/rogerio-castellano/inventario-api/internal/auth"
	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/rogerio-castellano/inventario-api/internal/repo"
	"github.com/rs/zerolog/log"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) {
	out, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, apierror.New(detail))
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusUnauthorized, apierror.New(detail), http.Header{
		"Www-Authenticate": []string{"Bearer"},
	})
}

// writeServiceError maps errors coming out of repositories and services to
// their HTTP status. Anything unrecognised is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrEmptyPatch):
		writeError(w, http.StatusBadRequest, apierror.MsgEmptyPatch)
	case errors.Is(err, repo.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Producto no encontrado")
	case errors.Is(err, repo.ErrContactNotFound):
		writeError(w, http.StatusNotFound, "Contacto no encontrado")
	case errors.Is(err, auth.ErrUserExists):
		writeError(w, http.StatusBadRequest, "El usuario ya existe")
	case errors.Is(err, auth.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, apierror.MsgValidation)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeUnauthorized(w, "Usuario o contraseña incorrectos")
	case errors.Is(err, auth.ErrInactiveUser):
		writeError(w, http.StatusBadRequest, "Usuario inactivo")
	case errors.Is(err, auth.ErrUnauthorized):
		writeUnauthorized(w, apierror.MsgUnauthorized)
	default:
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeError(w, http.StatusInternalServerError, apierror.MsgInternal)
	}
}

// pagination reads skip and limit from the query string.
func pagination(r *http.Request) (repo.ListFilter, map[string]string) {
	filter := repo.ListFilter{
		Query:  r.URL.Query().Get("q"),
		Offset: 0,
		Limit:  repo.DefaultLimit,
	}
	fields := map[string]string{}

	if s := r.URL.Query().Get("skip"); s != "" {
		skip, err := strconv.Atoi(s)
		if err != nil || skip < 0 {
			fields["skip"] = "min=0"
		} else {
			filter.Offset = skip
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 || limit > repo.MaxLimit {
			fields["limit"] = fmt.Sprintf("min=1,max=%d", repo.MaxLimit)
		} else {
			filter.Limit = limit
		}
	}
	return filter, fields
}

// clientIP returns the caller address without its port. RealIP has already
// replaced RemoteAddr when a proxy header is present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
