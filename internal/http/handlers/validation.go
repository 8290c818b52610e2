package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/inventario-api/internal/apierror"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Lets min/max tags apply to prices.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate decodes the request body into req and runs its validate
// tags. It writes the 400 response itself and returns false on failure.
func bindAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := readJSON(w, r, req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON invalido: "+err.Error())
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, apierror.MsgValidation)
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		writeJSON(w, http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}
