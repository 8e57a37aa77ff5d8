package handlers

import (
	"net/http"
	"strings"

	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TargetHandler handles targets, target groups, tags and imports
type TargetHandler struct {
	service service.TargetServiceInterface
}

// NewTargetHandler creates a new target handler
func NewTargetHandler(service service.TargetServiceInterface) *TargetHandler {
	return &TargetHandler{service: service}
}

// bulkTargetsRequest is the JSON form of a bulk import
type bulkTargetsRequest struct {
	Targets []map[string]interface{} `json:"targets"`
}

// ListTargets handles GET /api/v1/targets
// @Summary List targets
// @Tags targets
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name, email, department or job title"
// @Param risk_level query string false "Filter by risk level"
// @Param is_active query bool false "Filter by active flag"
// @Param department query string false "Filter by department"
// @Param tag query string false "Filter by tag ID"
// @Success 200 {object} service.TargetListResponse
// @Security BearerAuth
// @Router /targets [get]
func (h *TargetHandler) ListTargets(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.TargetListRequest
	if !bindQuery(c, &req) || !queryID(c, "tag", &req.Tag) {
		return
	}

	targets, err := h.service.List(actor, &req)
	if err != nil {
		respondError(c, err, "list targets")
		return
	}
	c.JSON(http.StatusOK, targets)
}

// CreateTarget handles POST /api/v1/targets
// @Summary Create target
// @Tags targets
// @Accept json
// @Produce json
// @Param target body service.TargetRequest true "Target data"
// @Success 201 {object} service.TargetResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Target already exists"
// @Security BearerAuth
// @Router /targets [post]
func (h *TargetHandler) CreateTarget(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.TargetRequest
	if !bindJSON(c, &req) {
		return
	}

	target, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "create target")
		return
	}
	c.JSON(http.StatusCreated, target)
}

// GetTarget handles GET /api/v1/targets/:id
// @Summary Get target by ID
// @Tags targets
// @Produce json
// @Param id path string true "Target ID (UUID)"
// @Success 200 {object} service.TargetResponse
// @Failure 404 {object} map[string]interface{} "Target not found"
// @Security BearerAuth
// @Router /targets/{id} [get]
func (h *TargetHandler) GetTarget(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target")
	if !ok {
		return
	}

	target, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "get target")
		return
	}
	c.JSON(http.StatusOK, target)
}

// UpdateTarget handles PUT /api/v1/targets/:id
// @Summary Update target
// @Tags targets
// @Accept json
// @Produce json
// @Param id path string true "Target ID (UUID)"
// @Param target body service.TargetRequest true "Target data"
// @Success 200 {object} service.TargetResponse
// @Failure 404 {object} map[string]interface{} "Target not found"
// @Failure 409 {object} map[string]interface{} "Target already exists"
// @Security BearerAuth
// @Router /targets/{id} [put]
func (h *TargetHandler) UpdateTarget(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target")
	if !ok {
		return
	}
	var req service.TargetRequest
	if !bindJSON(c, &req) {
		return
	}

	target, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "update target")
		return
	}
	c.JSON(http.StatusOK, target)
}

// DeleteTarget handles DELETE /api/v1/targets/:id
// @Summary Delete target
// @Tags targets
// @Param id path string true "Target ID (UUID)"
// @Success 204 "Target deleted"
// @Failure 404 {object} map[string]interface{} "Target not found"
// @Security BearerAuth
// @Router /targets/{id} [delete]
func (h *TargetHandler) DeleteTarget(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "delete target")
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkCreateTargets handles POST /api/v1/targets/bulk-create
// @Summary Bulk import targets
// @Description Upload a .csv, .xls or .xlsx file as "file", or post {"targets": [...]}
// @Tags targets
// @Accept multipart/form-data,json
// @Produce json
// @Param file formData file false "Spreadsheet of targets"
// @Success 201 {object} service.BulkImportResponse
// @Failure 400 {object} map[string]interface{} "File too large, too many rows or unsupported type"
// @Security BearerAuth
// @Router /targets/bulk-create [post]
func (h *TargetHandler) BulkCreateTargets(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	in := &service.BulkImportInput{}
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if header, err := c.FormFile("file"); err == nil {
			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
				return
			}
			defer file.Close()
			in.FileName = header.Filename
			in.File = file
			in.Size = header.Size
		}
	} else if c.Request.ContentLength != 0 {
		var req bulkTargetsRequest
		if !bindJSON(c, &req) {
			return
		}
		in.Targets = req.Targets
	}

	resp, err := h.service.BulkCreate(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err, "import targets")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Statistics handles GET /api/v1/targets/statistics
// @Summary Target statistics
// @Tags targets
// @Produce json
// @Success 200 {object} service.TargetStatisticsResponse
// @Security BearerAuth
// @Router /targets/statistics [get]
func (h *TargetHandler) Statistics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(actor)
	if err != nil {
		respondError(c, err, "get target statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListImports handles GET /api/v1/targets/imports
// @Summary Import history
// @Tags targets
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Success 200 {object} service.TargetImportListResponse
// @Security BearerAuth
// @Router /targets/imports [get]
func (h *TargetHandler) ListImports(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params service.ListParams
	if !bindQuery(c, &params) {
		return
	}

	imports, err := h.service.ListImports(actor, params)
	if err != nil {
		respondError(c, err, "list imports")
		return
	}
	c.JSON(http.StatusOK, imports)
}

// ListGroups handles GET /api/v1/targets/groups
// @Summary List target groups
// @Tags target-groups
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name or description"
// @Success 200 {object} service.TargetGroupListResponse
// @Security BearerAuth
// @Router /targets/groups [get]
func (h *TargetHandler) ListGroups(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params service.ListParams
	if !bindQuery(c, &params) {
		return
	}

	groups, err := h.service.ListGroups(actor, params)
	if err != nil {
		respondError(c, err, "list target groups")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// CreateGroup handles POST /api/v1/targets/groups
// @Summary Create target group
// @Tags target-groups
// @Accept json
// @Produce json
// @Param group body service.TargetGroupRequest true "Group data"
// @Success 201 {object} service.TargetGroupResponse
// @Failure 400 {object} map[string]interface{} "Invalid target IDs"
// @Failure 409 {object} map[string]interface{} "Group already exists"
// @Security BearerAuth
// @Router /targets/groups [post]
func (h *TargetHandler) CreateGroup(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.TargetGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.CreateGroup(actor, &req)
	if err != nil {
		respondError(c, err, "create target group")
		return
	}
	c.JSON(http.StatusCreated, group)
}

// GetGroup handles GET /api/v1/targets/groups/:id
// @Summary Get target group
// @Tags target-groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.TargetGroupResponse
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /targets/groups/{id} [get]
func (h *TargetHandler) GetGroup(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target group")
	if !ok {
		return
	}

	group, err := h.service.GetGroup(actor, id)
	if err != nil {
		respondError(c, err, "get target group")
		return
	}
	c.JSON(http.StatusOK, group)
}

// UpdateGroup handles PUT /api/v1/targets/groups/:id
// @Summary Update target group
// @Tags target-groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.TargetGroupRequest true "Group data"
// @Success 200 {object} service.TargetGroupResponse
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /targets/groups/{id} [put]
func (h *TargetHandler) UpdateGroup(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target group")
	if !ok {
		return
	}
	var req service.TargetGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.UpdateGroup(actor, id, &req)
	if err != nil {
		respondError(c, err, "update target group")
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup handles DELETE /api/v1/targets/groups/:id
// @Summary Delete target group
// @Tags target-groups
// @Param id path string true "Group ID (UUID)"
// @Success 204 "Group deleted"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /targets/groups/{id} [delete]
func (h *TargetHandler) DeleteGroup(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target group")
	if !ok {
		return
	}

	if err := h.service.DeleteGroup(actor, id); err != nil {
		respondError(c, err, "delete target group")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTags handles GET /api/v1/targets/tags
// @Summary List target tags
// @Tags target-tags
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name"
// @Success 200 {object} service.TargetTagListResponse
// @Security BearerAuth
// @Router /targets/tags [get]
func (h *TargetHandler) ListTags(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params service.ListParams
	if !bindQuery(c, &params) {
		return
	}

	tags, err := h.service.ListTags(actor, params)
	if err != nil {
		respondError(c, err, "list target tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag handles POST /api/v1/targets/tags
// @Summary Create target tag
// @Tags target-tags
// @Accept json
// @Produce json
// @Param tag body service.TargetTagRequest true "Tag data"
// @Success 201 {object} service.TargetTagResponse
// @Failure 409 {object} map[string]interface{} "Tag already exists"
// @Security BearerAuth
// @Router /targets/tags [post]
func (h *TargetHandler) CreateTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.TargetTagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag, err := h.service.CreateTag(actor, &req)
	if err != nil {
		respondError(c, err, "create target tag")
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// GetTag handles GET /api/v1/targets/tags/:id
// @Summary Get target tag
// @Tags target-tags
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 200 {object} service.TargetTagResponse
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Security BearerAuth
// @Router /targets/tags/{id} [get]
func (h *TargetHandler) GetTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target tag")
	if !ok {
		return
	}

	tag, err := h.service.GetTag(actor, id)
	if err != nil {
		respondError(c, err, "get target tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// UpdateTag handles PUT /api/v1/targets/tags/:id
// @Summary Update target tag
// @Tags target-tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Param tag body service.TargetTagRequest true "Tag data"
// @Success 200 {object} service.TargetTagResponse
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Security BearerAuth
// @Router /targets/tags/{id} [put]
func (h *TargetHandler) UpdateTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target tag")
	if !ok {
		return
	}
	var req service.TargetTagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag, err := h.service.UpdateTag(actor, id, &req)
	if err != nil {
		respondError(c, err, "update target tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag handles DELETE /api/v1/targets/tags/:id
// @Summary Delete target tag
// @Tags target-tags
// @Param id path string true "Tag ID (UUID)"
// @Success 204 "Tag deleted"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Security BearerAuth
// @Router /targets/tags/{id} [delete]
func (h *TargetHandler) DeleteTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "target tag")
	if !ok {
		return
	}

	if err := h.service.DeleteTag(actor, id); err != nil {
		respondError(c, err, "delete target tag")
		return
	}
	c.Status(http.StatusNoContent)
}
