package adobesign

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

const (
	// ClientIDHeader carries the application client id on every request.
	ClientIDHeader = "X-AdobeSign-ClientId"
	// ClientIDField echoes the client id in response bodies.
	ClientIDField   = "xAdobeSignClientId"
	maxPayloadBytes = 10 << 20
)

// Handler adapts Service to HTTP.
type Handler struct {
	service *Service
	log     *slog.Logger
}

// NewHandler constructs the HTTP handler.
func NewHandler(service *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{service: service, log: log}
}

// Verify answers the provider's registration handshake.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) error {
	clientID := r.Header.Get(ClientIDHeader)
	if err := h.service.Authenticate(clientID); err != nil {
		writeHTTPError(w, err)
		return nil
	}
	return writeEcho(w, clientID)
}

// Deliver processes an agreement notification.
func (h *Handler) Deliver(w http.ResponseWriter, r *http.Request) error {
	clientID := r.Header.Get(ClientIDHeader)
	if err := h.service.Authenticate(clientID); err != nil {
		h.log.WarnContext(r.Context(), "Rejected webhook delivery", "error", err)
		writeHTTPError(w, err)
		return nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeHTTPError(w, ErrPayloadTooLarge)
			return nil
		}
		writeHTTPError(w, ErrInvalidPayload)
		return nil
	}

	if _, err := h.service.Deliver(r.Context(), body); err != nil {
		if handled := writeHTTPError(w, err); handled {
			if ClassifyError(err) == ErrorUpstream {
				h.log.ErrorContext(r.Context(), "Webhook delivery failed", "error", err)
			}
			return nil
		}
		return err
	}
	return writeEcho(w, clientID)
}

func writeEcho(w http.ResponseWriter, clientID string) error {
	w.Header().Set(ClientIDHeader, clientID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]string{ClientIDField: clientID})
}

func writeHTTPError(w http.ResponseWriter, err error) bool {
	switch ClassifyError(err) {
	case ErrorUnknown:
		return false
	case ErrorAuthentication:
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return true
	case ErrorValidation:
		http.Error(w, "invalid notification payload", http.StatusBadRequest)
		return true
	case ErrorPayloadTooLarge:
		http.Error(w, "notification payload too large", http.StatusRequestEntityTooLarge)
		return true
	case ErrorUpstream:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return true
	}
	return false
}
