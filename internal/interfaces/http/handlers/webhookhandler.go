package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	billingusecases "studyhall/internal/application/billing/usecases"
	"studyhall/internal/domain/entitlement"
	sharedconfig "studyhall/internal/shared/config"
	"studyhall/internal/shared/logger"
)

const maxWebhookBody = 64 << 10

// WebhookHandler receives Stripe subscription lifecycle events. Events it
// cannot map are acknowledged with 200 so Stripe stops retrying; only
// signature failures and our own store errors are rejected.
type WebhookHandler struct {
	activate *billingusecases.ActivateSubscriptionUseCase
	cancel   *billingusecases.CancelSubscriptionUseCase
	cfg      *sharedconfig.PaymentConfig
	logger   logger.Interface
}

func NewWebhookHandler(
	activate *billingusecases.ActivateSubscriptionUseCase,
	cancel *billingusecases.CancelSubscriptionUseCase,
	cfg *sharedconfig.PaymentConfig,
	logger logger.Interface,
) *WebhookHandler {
	return &WebhookHandler{
		activate: activate,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
	}
}

func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.cfg.StripeWebhookSecret)
	if err != nil {
		h.logger.Warnw("rejected webhook with bad signature", "error", err)
		c.Status(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated":
		err = h.handleSubscriptionUpserted(c, event)
	case "customer.subscription.deleted":
		err = h.handleSubscriptionDeleted(c, event)
	default:
		h.logger.Debugw("ignoring webhook event", "type", event.Type)
	}
	if err != nil {
		h.logger.Errorw("failed to process webhook event", "type", event.Type, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

func (h *WebhookHandler) handleSubscriptionUpserted(c *gin.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		h.logger.Warnw("discarding malformed subscription event", "error", err)
		return nil
	}

	userID := h.userIDFromMetadata(sub.Metadata)
	if userID == 0 {
		h.logger.Warnw("subscription event without user metadata", "subscription", sub.ID)
		return nil
	}
	if sub.Status != stripe.SubscriptionStatusActive && sub.Status != stripe.SubscriptionStatusTrialing {
		h.logger.Debugw("ignoring subscription in non-active status",
			"subscription", sub.ID,
			"status", sub.Status,
		)
		return nil
	}

	tier, expiresAt, ok := h.planFromItems(sub.Items)
	if !ok {
		h.logger.Warnw("subscription event with unknown price", "subscription", sub.ID)
		return nil
	}

	return h.activate.Execute(c.Request.Context(), billingusecases.ActivateSubscriptionCommand{
		UserID:    userID,
		Tier:      tier,
		ExpiresAt: expiresAt,
	})
}

func (h *WebhookHandler) handleSubscriptionDeleted(c *gin.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		h.logger.Warnw("discarding malformed subscription event", "error", err)
		return nil
	}

	userID := h.userIDFromMetadata(sub.Metadata)
	if userID == 0 {
		h.logger.Warnw("subscription event without user metadata", "subscription", sub.ID)
		return nil
	}

	return h.cancel.Execute(c.Request.Context(), billingusecases.CancelSubscriptionCommand{
		UserID: userID,
	})
}

func (h *WebhookHandler) userIDFromMetadata(metadata map[string]string) uint {
	raw, ok := metadata["user_id"]
	if !ok {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// planFromItems maps the subscribed price to a plan tier and takes the
// period end of that item as the entitlement expiry.
func (h *WebhookHandler) planFromItems(items *stripe.SubscriptionItemList) (entitlement.PlanTier, time.Time, bool) {
	if items == nil {
		return "", time.Time{}, false
	}
	for _, item := range items.Data {
		if item.Price == nil {
			continue
		}
		expiresAt := time.Unix(item.CurrentPeriodEnd, 0).UTC()
		switch item.Price.ID {
		case h.cfg.MonthlyPriceID:
			return entitlement.TierMonthly, expiresAt, true
		case h.cfg.YearlyPriceID:
			return entitlement.TierYearly, expiresAt, true
		}
	}
	return "", time.Time{}, false
}
