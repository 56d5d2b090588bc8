package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/campaign_url_api/models"
	"github.com/vit0-9/campaign_url_api/pkg/utils"
	"github.com/vit0-9/campaign_url_api/pkg/utils/shortener"
)

// URLUtilitiesHandlers groups URL specific utilities
type URLUtilitiesHandlers struct {
	assembler         *utils.CampaignAssembler
	validationTimeout time.Duration
	qrSize            int
}

func NewURLUtilitiesHandlers(assembler *utils.CampaignAssembler, validationTimeout time.Duration, qrSize int) *URLUtilitiesHandlers {
	return &URLUtilitiesHandlers{assembler: assembler, validationTimeout: validationTimeout, qrSize: qrSize}
}

// ValidateURLHandler godoc
// @Summary      Validate a URL
// @Description  Probes the URL with HEAD (GET when HEAD is refused) and classifies it as reachable, unreachable, error or skipped. Network problems are reported in the body, never as an HTTP error.
// @Tags         URL Manipulation
// @Accept       json
// @Produce      json
// @Param        request body models.ValidateURLRequest true "URL to probe"
// @Success      200 {object} models.ValidateURLResponse
// @Failure      400 {object} models.APIErrorResponse "Invalid request payload"
// @Router       /url/validate [post]
func (h *URLUtilitiesHandlers) ValidateURLHandler(c *gin.Context) {
	var req models.ValidateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	timeout := h.validationTimeout
	if req.TimeoutMS > 0 {
		timeout = time.Duration(req.TimeoutMS) * time.Millisecond
	}
	result := h.assembler.Validator().Validate(c.Request.Context(), req.URL, timeout)
	c.PureJSON(http.StatusOK, models.ValidateURLResponse{URL: models.SafeURLString(req.URL), ValidationResult: result})
}

// ShortenURLHandler godoc
// @Summary      Shorten a URL
// @Description  Stores the URL behind a short code. Shortening the same URL twice returns the same code. The short link is served at /s/{code} on the server root, outside the /api/v1 base path.
// @Tags         URL Manipulation
// @Accept       json
// @Produce      json
// @Param        request body models.ShortenURLRequest true "URL to shorten"
// @Success      200 {object} models.ShortenURLResponse
// @Failure      400 {object} models.APIErrorResponse "Invalid URL"
// @Failure      503 {object} models.APIErrorResponse "Shortener not configured"
// @Router       /url/shorten [post]
func (h *URLUtilitiesHandlers) ShortenURLHandler(c *gin.Context) {
	var req models.ShortenURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	service := h.assembler.Shortener()
	if service == nil {
		abortWithError(c, http.StatusServiceUnavailable, models.ErrorCodeInternal, "Shortener is not configured", "")
		return
	}
	link, err := service.Shorten(c.Request.Context(), req.URL)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.PureJSON(http.StatusOK, models.ShortenURLResponse{
		OriginalURL: models.SafeURLString(link.OriginalURL),
		ShortURL:    models.SafeURLString(link.ShortURL(h.assembler.PublicBaseURL())),
		ShortCode:   link.ShortCode,
		Clicks:      link.Clicks,
		CreatedAt:   link.CreatedAt,
	})
}

// QRCodeHandler godoc
// @Summary      QR code for a URL
// @Description  Renders the URL as a PNG QR code.
// @Tags         URL Manipulation
// @Produce      png
// @Param        url query string true "URL to encode"
// @Param        size query int false "Image size in pixels (64-1024)"
// @Success      200 {file} binary
// @Failure      400 {object} models.APIErrorResponse "Missing url or bad size"
// @Router       /url/qr [get]
func (h *URLUtilitiesHandlers) QRCodeHandler(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		abortWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "url query parameter is required", "")
		return
	}
	size := h.qrSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "size must be a positive integer", "")
			return
		}
		size = parsed
	}

	png, err := utils.GenerateQRCode(target, size)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// RedirectHandler serves /s/:code, outside the /api/v1 base path and the swagger
// document: 302 to the stored URL with the click counted, 404 for unknown codes.
func (h *URLUtilitiesHandlers) RedirectHandler(c *gin.Context) {
	service := h.assembler.Shortener()
	if service == nil {
		abortWithDomainError(c, shortener.ErrLinkNotFound)
		return
	}
	link, err := service.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Redirect(http.StatusFound, link.OriginalURL)
}

// GenerateUTMHandler godoc
// @Summary      Generate UTM suffixed URLs in bulk
// @Description  Creates one campaign URL per variable set, sharing the destination and common parameters. Supports formatting options.
// @Tags         URL Manipulation
// @Accept       json
// @Produce      json
// @Param        utm_request body models.UTMGeneratorRequest true "UTM Generation Request"
// @Success      200 {object} models.UTMGeneratorResponse "Successfully generated UTM URLs"
// @Failure      400 {object} models.APIErrorResponse "Invalid input"
// @Router       /url/generate-utm [post]
func (h *URLUtilitiesHandlers) GenerateUTMHandler(c *gin.Context) {
	var req models.UTMGeneratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	generatedLinks := make([]models.GeneratedUTMLink, 0, len(req.VariableSets))
	for _, set := range req.VariableSets {
		fields := req.Fields(set)
		finalURL, err := utils.BuildCampaignURL(fields)
		if err != nil {
			abortWithDomainError(c, err)
			return
		}
		generatedLinks = append(generatedLinks, models.GeneratedUTMLink{
			Fields:   fields,
			FullURL:  models.SafeURLString(finalURL),
			Warnings: utils.LintCampaignFields(fields),
		})
	}
	c.PureJSON(http.StatusOK, models.UTMGeneratorResponse{
		DestinationURL: req.DestinationURL,
		GeneratedURLs:  generatedLinks,
		OptionsApplied: req.Options,
	})
}

// CleanURLHandler godoc
// @Summary      Clean URL from tracking parameters
// @Description  Removes known click identifiers and campaign parameters (utm_*, gclid, fbclid, ...) from a URL. Kept parameters retain their order and encoding.
// @Tags         URL Manipulation
// @Accept       json
// @Produce      json
// @Param        clean_request body models.CleanURLRequest true "URL to clean"
// @Success      200 {object} models.DetailedCleanURLResponse "Cleaned URL and removed parameters"
// @Failure      400 {object} models.APIErrorResponse "Invalid URL"
// @Router       /url/clean [post]
func (h *URLUtilitiesHandlers) CleanURLHandler(c *gin.Context) {
	var req models.CleanURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	normalized, err := utils.NormalizeURL(req.URL)
	var invalid *utils.InvalidURLError
	if errors.As(err, &invalid) {
		invalid.Field = "url"
	}
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	result, err := utils.CleanURL(normalized)
	if err != nil {
		abortWithDomainError(c, &utils.InvalidURLError{URL: req.URL, Reason: "cannot be cleaned", Err: err, Field: "url"})
		return
	}

	message := "No tracking parameters found."
	if len(result.RemovedParams) > 0 {
		message = "Tracking parameters removed."
	}
	c.PureJSON(http.StatusOK, models.DetailedCleanURLResponse{
		OriginalURL:   models.SafeURLString(req.URL),
		CleanedURL:    models.SafeURLString(result.CleanedURL),
		RemovedParams: result.RemovedParams,
		Message:       message,
	})
}
