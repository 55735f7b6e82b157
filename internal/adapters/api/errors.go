package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/mvetrov/assetmart-cli/internal/domain"
)

const genericErrorMessage = "unexpected error"

var statusMessages = map[int]string{
	http.StatusBadRequest:          "invalid request",
	http.StatusUnauthorized:        "invalid credentials",
	http.StatusForbidden:           "access denied",
	http.StatusNotFound:            "not found",
	http.StatusUnprocessableEntity: "validation error",
	http.StatusTooManyRequests:     "rate limited",
	http.StatusInternalServerError: "server error",
}

type errorEnvelope struct {
	Detail  json.RawMessage            `json:"detail"`
	Message string                     `json:"message"`
	Err     string                     `json:"error"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

type validationItem struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// Normalize maps any backend failure payload to one user-facing message and
// an optional field-error map. It never fails: unrecognized input falls back
// to the HTTP status table and finally to a generic message.
func Normalize(statusCode int, body []byte) *domain.NormalizedError {
	result := &domain.NormalizedError{StatusCode: statusCode}

	var envelope errorEnvelope
	if len(body) > 0 {
		_ = json.Unmarshal(body, &envelope)
	}

	if message, fields, ok := fromDetail(envelope.Detail); ok {
		result.Message = message
		result.FieldErrors = fields
		return result
	}

	if envelope.Message != "" {
		result.Message = envelope.Message
		return result
	}
	if envelope.Err != "" {
		result.Message = envelope.Err
		return result
	}

	if message, fields, ok := fromErrorsMap(envelope.Errors); ok {
		result.Message = message
		result.FieldErrors = fields
		return result
	}

	if message, ok := statusMessages[statusCode]; ok {
		result.Message = message
		return result
	}
	if text := http.StatusText(statusCode); text != "" {
		result.Message = fmt.Sprintf("Error %d: %s", statusCode, text)
		return result
	}

	result.Message = genericErrorMessage
	return result
}

// NormalizeTransport covers failures that never produced an HTTP response
// (DNS, refused connection, timeout). The cause is kept for logging but the
// surfaced message stays generic.
func NormalizeTransport(err error) *domain.NormalizedError {
	_ = err
	return &domain.NormalizedError{Message: genericErrorMessage}
}

func fromDetail(raw json.RawMessage) (string, map[string]string, bool) {
	if len(raw) == 0 {
		return "", nil, false
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil && asString != "" {
		return asString, nil, true
	}

	var items []validationItem
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return "", nil, false
	}

	fields := make(map[string]string, len(items))
	messages := make([]string, 0, len(items))
	for _, item := range items {
		field := lastLocSegment(item.Loc)
		messages = append(messages, fmt.Sprintf("%s: %s", field, item.Msg))
		fields[field] = item.Msg
	}

	return strings.Join(messages, ", "), fields, true
}

func fromErrorsMap(raw map[string]json.RawMessage) (string, map[string]string, bool) {
	if len(raw) == 0 {
		return "", nil, false
	}

	fields := make(map[string]string, len(raw))
	names := make([]string, 0, len(raw))
	for name, value := range raw {
		fields[name] = decodeFieldMessage(value)
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, fields[name]))
	}

	return strings.Join(parts, "; "), fields, true
}

func decodeFieldMessage(raw json.RawMessage) string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, ", ")
	}

	return strings.Trim(string(raw), `"`)
}

func lastLocSegment(loc []json.RawMessage) string {
	if len(loc) == 0 {
		return "field"
	}

	last := loc[len(loc)-1]

	var asString string
	if err := json.Unmarshal(last, &asString); err == nil {
		return asString
	}

	return strings.Trim(string(last), `"`)
}
