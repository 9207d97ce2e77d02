package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/confhub/internal/webhooks/adobesign"
)

// WebhookRoutes registers webhook endpoints.
type WebhookRoutes struct {
	adobeSign *adobesign.Handler
}

// NewWebhookRoutes constructs webhook routes.
func NewWebhookRoutes(adobeSign *adobesign.Handler) *WebhookRoutes {
	return &WebhookRoutes{adobeSign: adobeSign}
}

// RegisterRoutes registers webhook endpoints.
func (w *WebhookRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/webhooks/adobe-sign", w.handleAdobeSignVerify)
	s.POST("/webhooks/adobe-sign", w.handleAdobeSignDeliver)
}

func (w *WebhookRoutes) handleAdobeSignVerify(c echo.Context) error {
	return w.adobeSign.Verify(c.Response(), c.Request())
}

func (w *WebhookRoutes) handleAdobeSignDeliver(c echo.Context) error {
	return w.adobeSign.Deliver(c.Response(), c.Request())
}
