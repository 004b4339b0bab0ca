// Package handler contains the HTTP handlers of the contact event worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/pubsub"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a Google-signed OIDC token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub push deliveries into processed contact events.
// Processing errors answer 503 so Pub/Sub redelivers; malformed messages
// answer 400 and everything else 200.
type PushHandler struct {
	verifyPushAuth      bool
	audience            string
	serviceAccountEmail string
	validateToken       TokenValidator
	logger              *slog.Logger
	processor           usecase.EventProcessor
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	Processor      usecase.EventProcessor
	TokenValidator TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests are only signed by Google outside local development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	h := &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  params.TokenValidator,
		logger:         params.Logger,
		processor:      params.Processor,
	}
	if h.validateToken == nil {
		h.validateToken = idtoken.Validate
	}
	if params.Config.Worker != nil {
		h.audience = params.Config.Worker.PushAudience
		h.serviceAccountEmail = params.Config.Worker.ServiceAccountEmail
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.log(ctx).Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.log(ctx).Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(pushMsg.Message.Data)
	if err != nil {
		h.log(ctx).Error("[Worker] Failed to decode contact event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := extractRequestID(ctx, &pushMsg, event)
	ctx, reqLogger := deliverycontext.BindRequest(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing contact event",
		slog.String("event_id", event.EventID.String()),
		slog.String("type", string(event.Type)),
	)

	outcome, err := h.processor.ProcessContactEvent(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process contact event",
			slog.String("event_id", event.EventID.String()),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Contact event processed",
		slog.String("event_id", event.EventID.String()),
		slog.String("outcome", string(outcome)),
	)

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

func decodeEvent(data string) (*service.ContactEvent, error) {
	if data == "" {
		return nil, errors.New("empty message data")
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 data")
	}

	var event service.ContactEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "invalid event json")
	}
	if event.EventID == uuid.Nil || event.Type == "" {
		return nil, errors.New("event id and type are required")
	}

	return &event, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.ContactEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header.
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// Without a configured audience the endpoint URL is the audience.
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.serviceAccountEmail != "" {
		if email, _ := payload.Claims["email"].(string); !strings.EqualFold(email, h.serviceAccountEmail) {
			return errors.Errorf("unexpected push identity: %s", email)
		}
	}

	return nil
}
