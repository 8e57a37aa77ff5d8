package handlers

import (
	"io"
	"net/http"

	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodyBytes = int64(65536)

// BillingHandler handles subscriptions, invoices, usage, payment methods and the Stripe webhook
type BillingHandler struct {
	service service.BillingServiceInterface
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(service service.BillingServiceInterface) *BillingHandler {
	return &BillingHandler{service: service}
}

// GetSubscription handles GET /api/v1/billing/subscription
// @Summary Get subscription
// @Tags billing
// @Produce json
// @Success 200 {object} models.Subscription
// @Failure 404 {object} map[string]interface{} "No subscription found"
// @Security BearerAuth
// @Router /billing/subscription [get]
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	subscription, err := h.service.GetSubscription(actor)
	if err != nil {
		respondError(c, err, "get subscription")
		return
	}
	c.JSON(http.StatusOK, subscription)
}

// UpdateSubscription handles PUT /api/v1/billing/subscription
// @Summary Change plan
// @Description Catalog plans take their limits from the plan catalog; custom plans accept explicit limits
// @Tags billing
// @Accept json
// @Produce json
// @Param subscription body service.UpdateSubscriptionRequest true "Plan change"
// @Success 200 {object} models.Subscription
// @Failure 404 {object} map[string]interface{} "No subscription found"
// @Security BearerAuth
// @Router /billing/subscription [put]
func (h *BillingHandler) UpdateSubscription(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.UpdateSubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	subscription, err := h.service.UpdateSubscription(actor, &req)
	if err != nil {
		respondError(c, err, "update subscription")
		return
	}
	c.JSON(http.StatusOK, subscription)
}

// Overview handles GET /api/v1/billing/overview
// @Summary Billing dashboard
// @Tags billing
// @Produce json
// @Success 200 {object} service.BillingOverviewResponse
// @Failure 404 {object} map[string]interface{} "No subscription found"
// @Security BearerAuth
// @Router /billing/overview [get]
func (h *BillingHandler) Overview(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	overview, err := h.service.Overview(actor)
	if err != nil {
		respondError(c, err, "get billing overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// ListInvoices handles GET /api/v1/billing/invoices
// @Summary List invoices
// @Tags billing
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param status query string false "Filter by status"
// @Success 200 {object} service.InvoiceListResponse
// @Security BearerAuth
// @Router /billing/invoices [get]
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.InvoiceListRequest
	if !bindQuery(c, &req) {
		return
	}

	invoices, err := h.service.ListInvoices(actor, &req)
	if err != nil {
		respondError(c, err, "list invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice handles GET /api/v1/billing/invoices/:id
// @Summary Get invoice
// @Tags billing
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]interface{} "Invoice not found"
// @Security BearerAuth
// @Router /billing/invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "invoice")
	if !ok {
		return
	}

	invoice, err := h.service.GetInvoice(actor, id)
	if err != nil {
		respondError(c, err, "get invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// ListUsage handles GET /api/v1/billing/usage
// @Summary List usage metrics
// @Tags billing
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param metric_type query string false "Filter by metric"
// @Param warning_sent query bool false "Filter by warning flag"
// @Param limit_exceeded query bool false "Filter by exceeded flag"
// @Success 200 {object} service.UsageListResponse
// @Security BearerAuth
// @Router /billing/usage [get]
func (h *BillingHandler) ListUsage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.UsageListRequest
	if !bindQuery(c, &req) {
		return
	}

	usage, err := h.service.ListUsage(actor, &req)
	if err != nil {
		respondError(c, err, "list usage metrics")
		return
	}
	c.JSON(http.StatusOK, usage)
}

// ListPaymentMethods handles GET /api/v1/billing/payment-methods
// @Summary List payment methods
// @Tags billing
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Success 200 {object} service.PaymentMethodListResponse
// @Security BearerAuth
// @Router /billing/payment-methods [get]
func (h *BillingHandler) ListPaymentMethods(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params service.ListParams
	if !bindQuery(c, &params) {
		return
	}

	methods, err := h.service.ListPaymentMethods(actor, params)
	if err != nil {
		respondError(c, err, "list payment methods")
		return
	}
	c.JSON(http.StatusOK, methods)
}

// CreatePaymentMethod handles POST /api/v1/billing/payment-methods
// @Summary Add payment method
// @Description Card details come from Stripe when a Stripe payment method id is given
// @Tags billing
// @Accept json
// @Produce json
// @Param method body service.PaymentMethodRequest true "Payment method"
// @Success 201 {object} models.PaymentMethod
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 503 {object} map[string]interface{} "Payment gateway is not configured"
// @Security BearerAuth
// @Router /billing/payment-methods [post]
func (h *BillingHandler) CreatePaymentMethod(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.PaymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}

	method, err := h.service.CreatePaymentMethod(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "create payment method")
		return
	}
	c.JSON(http.StatusCreated, method)
}

// GetPaymentMethod handles GET /api/v1/billing/payment-methods/:id
// @Summary Get payment method
// @Tags billing
// @Produce json
// @Param id path string true "Payment method ID (UUID)"
// @Success 200 {object} models.PaymentMethod
// @Failure 404 {object} map[string]interface{} "Payment method not found"
// @Security BearerAuth
// @Router /billing/payment-methods/{id} [get]
func (h *BillingHandler) GetPaymentMethod(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "payment method")
	if !ok {
		return
	}

	method, err := h.service.GetPaymentMethod(actor, id)
	if err != nil {
		respondError(c, err, "get payment method")
		return
	}
	c.JSON(http.StatusOK, method)
}

// UpdatePaymentMethod handles PUT /api/v1/billing/payment-methods/:id
// @Summary Update payment method
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Payment method ID (UUID)"
// @Param method body service.PaymentMethodRequest true "Payment method"
// @Success 200 {object} models.PaymentMethod
// @Failure 404 {object} map[string]interface{} "Payment method not found"
// @Security BearerAuth
// @Router /billing/payment-methods/{id} [put]
func (h *BillingHandler) UpdatePaymentMethod(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "payment method")
	if !ok {
		return
	}
	var req service.PaymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}

	method, err := h.service.UpdatePaymentMethod(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err, "update payment method")
		return
	}
	c.JSON(http.StatusOK, method)
}

// DeletePaymentMethod handles DELETE /api/v1/billing/payment-methods/:id
// @Summary Delete payment method
// @Tags billing
// @Param id path string true "Payment method ID (UUID)"
// @Success 204 "Payment method deleted"
// @Failure 404 {object} map[string]interface{} "Payment method not found"
// @Security BearerAuth
// @Router /billing/payment-methods/{id} [delete]
func (h *BillingHandler) DeletePaymentMethod(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "payment method")
	if !ok {
		return
	}

	if err := h.service.DeletePaymentMethod(actor, id); err != nil {
		respondError(c, err, "delete payment method")
		return
	}
	c.Status(http.StatusNoContent)
}

// StripeWebhook handles POST /api/v1/billing/webhooks/stripe
// @Summary Stripe webhook
// @Description Signature-verified invoice.paid and invoice.payment_failed events
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Event accepted"
// @Failure 401 {object} map[string]interface{} "Invalid webhook signature"
// @Failure 503 {object} map[string]interface{} "Payment gateway is not configured"
// @Router /billing/webhooks/stripe [post]
func (h *BillingHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body", "details": err.Error()})
		return
	}

	if err := h.service.HandleStripeWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		respondError(c, err, "handle stripe webhook")
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
