package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/campaign_url_api/models"
	"github.com/vit0-9/campaign_url_api/pkg/utils"
)

// CampaignDefaults are the server-side values used when a request leaves them out.
type CampaignDefaults struct {
	Temperature       float64
	ValidationTimeout time.Duration
}

// CampaignHandlers groups the natural-language and form-driven URL builders.
type CampaignHandlers struct {
	assembler *utils.CampaignAssembler
	defaults  CampaignDefaults
}

func NewCampaignHandlers(assembler *utils.CampaignAssembler, defaults CampaignDefaults) *CampaignHandlers {
	return &CampaignHandlers{assembler: assembler, defaults: defaults}
}

func (h *CampaignHandlers) options(flags models.AssembleFlags) utils.AssembleOptions {
	return utils.AssembleOptions{
		Validate:          flags.Validate,
		ValidationTimeout: h.defaults.ValidationTimeout,
		Shorten:           flags.Shorten,
		Record:            flags.Record,
		CleanDestination:  flags.CleanDestination,
	}
}

// ExtractCampaignHandler godoc
// @Summary      Generate a campaign URL from a description
// @Description  Extracts campaign fields from free text with one language-model call, then builds the UTM-tagged URL. Validation, shortening and history recording are optional.
// @Tags         Campaign
// @Accept       json
// @Produce      json
// @Param        request body models.ExtractCampaignRequest true "Campaign description"
// @Success      200 {object} models.CampaignResponse
// @Failure      400 {object} models.APIErrorResponse "Invalid input"
// @Failure      502 {object} models.APIErrorResponse "Model call failed or reply unusable"
// @Router       /campaign/extract [post]
func (h *CampaignHandlers) ExtractCampaignHandler(c *gin.Context) {
	var req models.ExtractCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	temperature := h.defaults.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	draft, err := h.assembler.Generate(c.Request.Context(), utils.GenerateRequest{
		Description: req.Description,
		Model:       req.Model,
		Temperature: temperature,
		APIKey:      req.APIKey,
	}, h.options(req.AssembleFlags))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.PureJSON(http.StatusOK, h.response(draft))
}

// BuildCampaignHandler godoc
// @Summary      Build a campaign URL from fields
// @Description  Normalizes the destination and appends the non-empty UTM parameters in fixed order.
// @Tags         Campaign
// @Accept       json
// @Produce      json
// @Param        request body models.BuildCampaignRequest true "Campaign fields"
// @Success      200 {object} models.CampaignResponse
// @Failure      400 {object} models.APIErrorResponse "Invalid input"
// @Router       /campaign/build [post]
func (h *CampaignHandlers) BuildCampaignHandler(c *gin.Context) {
	var req models.BuildCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	h.build(c, req)
}

// SharedCampaignHandler godoc
// @Summary      Build a campaign URL from a shared link
// @Description  Same as the POST variant, with the fields passed as query parameters so a filled-in form can be shared.
// @Tags         Campaign
// @Produce      json
// @Param        destination_url query string true "Destination URL"
// @Param        source query string false "utm_source"
// @Param        medium query string false "utm_medium"
// @Param        campaign_name query string false "utm_campaign"
// @Param        campaign_id query string false "utm_id"
// @Param        term query string false "utm_term"
// @Param        content query string false "utm_content"
// @Param        validate query bool false "Probe the built URL"
// @Param        clean_destination query bool false "Strip tracking parameters from the destination"
// @Success      200 {object} models.CampaignResponse
// @Failure      400 {object} models.APIErrorResponse "Invalid input"
// @Router       /campaign/build [get]
func (h *CampaignHandlers) SharedCampaignHandler(c *gin.Context) {
	var req models.BuildCampaignRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	h.build(c, req)
}

func (h *CampaignHandlers) build(c *gin.Context, req models.BuildCampaignRequest) {
	fields := req.Fields().ApplyOptions(req.Options)
	draft, err := h.assembler.Assemble(c.Request.Context(), "", fields, h.options(req.AssembleFlags))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.PureJSON(http.StatusOK, h.response(draft))
}

func (h *CampaignHandlers) response(draft *utils.CampaignDraft) models.CampaignResponse {
	resp := models.NewCampaignResponse(draft)
	resp.ShareURL = models.SafeURLString(ShareURL(h.assembler.PublicBaseURL(), draft.Fields))
	return resp
}

// ShareURL encodes fields as a GET /campaign/build link.
func ShareURL(baseURL string, fields utils.CampaignFields) string {
	values := url.Values{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			values.Set(key, value)
		}
	}
	set("destination_url", fields.DestinationURL)
	set("source", fields.Source)
	set("medium", fields.Medium)
	set("campaign_name", fields.CampaignName)
	set("campaign_id", fields.CampaignID)
	set("term", fields.Term)
	set("content", fields.Content)
	return strings.TrimRight(baseURL, "/") + "/api/v1/campaign/build?" + values.Encode()
}
