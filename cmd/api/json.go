package main

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// Register custom validation for US ZIP codes
	Validate.RegisterValidation("uszip", func(fl validator.FieldLevel) bool {
		zip := fl.Field().String()
		// Matches 12345 or 12345-6789
		matched, _ := regexp.MatchString(`^[0-9]{5}(-[0-9]{4})?$`, zip)
		return matched
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

// The error shapes are part of the external contract: {error} for plain
// failures, {error, message} when an upstream provider supplied detail.
func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Error string `json:"error"`
	}

	return writeJSON(w, status, &envelope{Error: message})
}

func writeJSONErrorDetail(w http.ResponseWriter, status int, message, detail string) error {
	type envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	return writeJSON(w, status, &envelope{Error: message, Message: detail})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	return writeJSON(w, status, data)
}
