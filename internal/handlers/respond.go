package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// upstreamMessage is shown for every movies API failure, not-found included
const upstreamMessage = "Could not load data. Please try again."

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// NewValidator returns a validator with the hhmm tag registered. An empty
// string passes hhmm so a bound can be cleared.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || clockPattern.MatchString(s)
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUpstreamError reports a failed movies API call as retryable
func writeUpstreamError(w http.ResponseWriter, logger *zap.Logger, err error) {
	logger.Error("movies API call failed", zap.Error(err))
	writeJSON(w, http.StatusBadGateway, map[string]any{
		"error": upstreamMessage,
		"retry": true,
	})
}

var errInvalidBody = errors.New("invalid request body")

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// validateInput reports the first failing field
func validateInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("invalid %s", verrs[0].Field())
	}
	return errInvalidBody
}

// decodeAndValidate reads a JSON body into dst and validates it
func decodeAndValidate(r *http.Request, v *validator.Validate, dst any) error {
	if err := decodeJSON(r, dst); err != nil {
		return err
	}
	return validateInput(v, dst)
}

// pathID parses the {id} path value
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// optionalIntQuery returns the named query value as an int, or nil when it
// is absent
func optionalIntQuery(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
