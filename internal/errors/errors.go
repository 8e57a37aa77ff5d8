// Package errors holds the typed errors services return. Each kind knows the
// HTTP status a handler should answer with.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError means an entity does not exist or is outside the caller's organization
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// AlreadyExistsError reports a uniqueness conflict. Context says what collided.
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context == "" {
		return e.Entity + " already exists"
	}
	return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
}

func (e *AlreadyExistsError) StatusCode() int { return http.StatusConflict }

// ValidationError is a rejected input; Field is empty for cross-field rules
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// InvalidStateError refuses an operation the entity's current status does not allow
type InvalidStateError struct {
	Entity  string
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func (e *InvalidStateError) StatusCode() int { return http.StatusBadRequest }

// message is shared by the kinds whose text is returned to the client as is
type message struct {
	Message string
}

func (m message) Error() string { return m.Message }

type BadRequestError struct{ message }

func (*BadRequestError) StatusCode() int { return http.StatusBadRequest }

type AuthenticationError struct{ message }

func (*AuthenticationError) StatusCode() int { return http.StatusUnauthorized }

type AuthorizationError struct{ message }

func (*AuthorizationError) StatusCode() int { return http.StatusForbidden }

// ConfigurationError means a feature is switched off by deployment settings
type ConfigurationError struct{ message }

func (*ConfigurationError) StatusCode() int { return http.StatusServiceUnavailable }

func notFound(entity string) *NotFoundError { return &NotFoundError{Entity: entity} }

func exists(entity, context string) *AlreadyExistsError {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

func badRequest(msg string) *BadRequestError { return &BadRequestError{message{msg}} }

func unauthenticated(msg string) *AuthenticationError { return &AuthenticationError{message{msg}} }

func forbidden(msg string) *AuthorizationError { return &AuthorizationError{message{msg}} }

var (
	ErrOrganizationNotFound      = notFound("organization")
	ErrUserNotFound              = notFound("user")
	ErrTargetNotFound            = notFound("target")
	ErrTargetGroupNotFound       = notFound("target group")
	ErrTargetTagNotFound         = notFound("target tag")
	ErrEmailTemplateNotFound     = notFound("email template")
	ErrLandingPageNotFound       = notFound("landing page")
	ErrCampaignNotFound          = notFound("campaign")
	ErrCampaignTargetNotFound    = notFound("campaign target")
	ErrSMTPConfigurationNotFound = notFound("smtp configuration")
	ErrCampaignReportNotFound    = notFound("campaign report")
	ErrScheduledReportNotFound   = notFound("scheduled report")
	ErrNotificationNotFound      = notFound("notification")
	ErrAlertRuleNotFound         = notFound("alert rule")
	ErrSubscriptionNotFound      = notFound("subscription")
	ErrInvoiceNotFound           = notFound("invoice")
	ErrPaymentMethodNotFound     = notFound("payment method")
	ErrPlanNotFound              = notFound("plan")
	ErrTrackingTokenNotFound     = notFound("tracking token")
)

var (
	ErrOrganizationExists = exists("organization", "with this domain")
	ErrUserExists         = exists("user", "with this email or username")
	ErrTargetExists       = exists("target", "with this email in the organization")
	ErrTargetGroupExists  = exists("target group", "with this name in the organization")
	ErrTargetTagExists    = exists("target tag", "with this name in the organization")
)

var (
	ErrInvalidAction          = badRequest("Invalid action")
	ErrNoOrganizationContext  = badRequest("No organization context")
	ErrScheduledStartInPast   = &ValidationError{Field: "scheduled_start", Message: "Scheduled start time must be in the future"}
	ErrPasswordMismatch       = &ValidationError{Field: "password_confirm", Message: "Passwords don't match"}
	ErrCampaignRunning        = &InvalidStateError{Entity: "campaign", Message: "Running campaigns cannot be modified"}
	ErrCampaignClosed         = &InvalidStateError{Entity: "campaign", Message: "Completed or cancelled campaigns cannot be modified"}
	ErrPaymentGatewayDisabled = &ConfigurationError{message{"payment gateway is not configured"}}

	// plain errors below end up as 500s
	ErrNoActiveSMTPConfig      = errors.New("no active SMTP configuration under its daily limit")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Login and token errors
var (
	ErrInvalidCredentials      = badRequest("Invalid credentials")
	ErrAccountDisabled         = badRequest("User account is disabled")
	ErrInvalidToken            = unauthenticated("invalid token")
	ErrInvalidRefreshToken     = unauthenticated("invalid refresh token")
	ErrRefreshTokenRevoked     = unauthenticated("refresh token has been revoked")
	ErrInvalidWebhookSignature = unauthenticated("invalid webhook signature")
)

var (
	ErrNotOrganizationMember = forbidden("user is not associated with an organization")
	ErrManagerRequired       = forbidden("only organization admins or customers can perform this action")
	ErrAdminRequired         = forbidden("Only platform admins can create admin accounts.")
)

// HTTPStatus returns the status carried by err, if any error in its chain has one
func HTTPStatus(err error) (int, bool) {
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode(), true
	}
	return 0, false
}

func is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func IsNotFound(err error) bool       { return is[*NotFoundError](err) }
func IsAlreadyExists(err error) bool  { return is[*AlreadyExistsError](err) }
func IsValidation(err error) bool     { return is[*ValidationError](err) }
func IsBadRequest(err error) bool     { return is[*BadRequestError](err) }
func IsInvalidState(err error) bool   { return is[*InvalidStateError](err) }
func IsAuthentication(err error) bool { return is[*AuthenticationError](err) }
func IsAuthorization(err error) bool  { return is[*AuthorizationError](err) }
func IsConfiguration(err error) bool  { return is[*ConfigurationError](err) }

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewBadRequestError(message string) error { return badRequest(message) }

func NewInvalidStateError(entity, message string) error {
	return &InvalidStateError{Entity: entity, Message: message}
}
