package handlers

import (
	"net/http"

	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// transparentGIF is a 1x1 transparent GIF89a
var transparentGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// TrackingHandler serves the public endpoints embedded in campaign emails
type TrackingHandler struct {
	service service.TrackingServiceInterface
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(service service.TrackingServiceInterface) *TrackingHandler {
	return &TrackingHandler{service: service}
}

func trackingRequest(c *gin.Context) service.TrackingRequest {
	return service.TrackingRequest{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// Open handles GET /track/:token/open
// @Summary Open pixel
// @Description Records an opened event and always answers with a 1x1 GIF
// @Tags tracking
// @Produce image/gif
// @Param token path string true "Tracking token"
// @Success 200 {file} binary
// @Router /track/{token}/open [get]
func (h *TrackingHandler) Open(c *gin.Context) {
	if err := h.service.Open(c.Request.Context(), c.Param("token"), trackingRequest(c)); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Debug("open not recorded")
	}
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Data(http.StatusOK, "image/gif", transparentGIF)
}

// Click handles GET /track/:token/click
// @Summary Tracked link
// @Description Records a click, then serves the landing page or redirects to it
// @Tags tracking
// @Produce html
// @Param token path string true "Tracking token"
// @Success 200 {string} string "Landing page"
// @Success 302 "Redirect to the landing page"
// @Failure 404 {object} map[string]interface{} "Tracking token not found"
// @Router /track/{token}/click [get]
func (h *TrackingHandler) Click(c *gin.Context) {
	result, err := h.service.Click(c.Request.Context(), c.Param("token"), trackingRequest(c))
	if err != nil {
		respondError(c, err, "record click")
		return
	}
	writeLanding(c, result)
}

// Submit handles POST /track/:token/submit
// @Summary Landing page form submission
// @Description Records a submission; password-like fields are never stored
// @Tags tracking
// @Accept x-www-form-urlencoded,json
// @Produce html
// @Param token path string true "Tracking token"
// @Success 200 {string} string "Awareness page"
// @Success 302 "Redirect"
// @Failure 404 {object} map[string]interface{} "Tracking token not found"
// @Router /track/{token}/submit [post]
func (h *TrackingHandler) Submit(c *gin.Context) {
	form := map[string]interface{}{}
	if c.ContentType() == gin.MIMEJSON {
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	} else {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data", "details": err.Error()})
			return
		}
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				form[key] = values[0]
			}
		}
	}

	result, err := h.service.Submit(c.Request.Context(), c.Param("token"), trackingRequest(c), form)
	if err != nil {
		respondError(c, err, "record submission")
		return
	}
	writeLanding(c, result)
}

// Report handles POST /track/:token/report
// @Summary Report phishing
// @Description The recipient reported the email as phishing
// @Tags tracking
// @Produce json
// @Param token path string true "Tracking token"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} map[string]interface{} "Tracking token not found"
// @Router /track/{token}/report [post]
func (h *TrackingHandler) Report(c *gin.Context) {
	if err := h.service.Report(c.Request.Context(), c.Param("token"), trackingRequest(c)); err != nil {
		respondError(c, err, "record report")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Thank you for reporting this email"})
}

func writeLanding(c *gin.Context, result *service.LandingResult) {
	if result.RedirectURL != "" {
		c.Redirect(http.StatusFound, result.RedirectURL)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result.HTML))
}
