package handlers

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/campaign_url_api/models"
	"github.com/vit0-9/campaign_url_api/pkg/utils"
	"github.com/vit0-9/campaign_url_api/pkg/utils/shortener"
)

func abortWithError(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, models.APIErrorResponse{
		StatusCode: status,
		ErrorCode:  code,
		Message:    message,
		Details:    details,
	})
}

func abortInvalidRequest(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "Invalid request payload", err.Error())
}

// abortWithDomainError maps the typed errors of the campaign pipeline to HTTP responses.
func abortWithDomainError(c *gin.Context, err error) {
	var (
		parseErr    *utils.ParseError
		upstreamErr *utils.UpstreamError
		invalidErr  *utils.InvalidURLError
	)
	switch {
	case errors.Is(err, utils.ErrEmptyDescription), errors.Is(err, utils.ErrTemperatureOutOfRange):
		abortWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, err.Error(), "")
	case errors.As(err, &invalidErr):
		field, message := invalidErr.Field, "Destination URL is not valid"
		if field == "" {
			field = utils.FieldDestinationURL
		} else if field != utils.FieldDestinationURL {
			message = "URL is not valid"
		}
		c.Abort()
		c.PureJSON(http.StatusBadRequest, models.APIErrorResponse{
			StatusCode: http.StatusBadRequest,
			ErrorCode:  models.ErrorCodeInvalidURL,
			Message:    message,
			Details:    invalidErr.Error(),
			Field:      field,
			Fields:     invalidErr.Fields,
		})
	case errors.As(err, &parseErr):
		abortWithError(c, http.StatusBadGateway, models.ErrorCodeParseError, "The model reply could not be parsed",
			parseErr.Reason+"; raw reply: "+truncateRaw(parseErr.Raw))
	case errors.As(err, &upstreamErr):
		abortWithError(c, http.StatusBadGateway, models.ErrorCodeUpstream+"_"+string(upstreamErr.Category), "Field extraction failed", upstreamErr.Error())
	case errors.Is(err, shortener.ErrLinkNotFound):
		abortWithError(c, http.StatusNotFound, models.ErrorCodeNotFound, "Link not found", "")
	case errors.Is(err, shortener.ErrInvalidLongURL), errors.Is(err, utils.ErrEmptyQRContent):
		c.AbortWithStatusJSON(http.StatusBadRequest, models.APIErrorResponse{
			StatusCode: http.StatusBadRequest,
			ErrorCode:  models.ErrorCodeInvalidURL,
			Message:    err.Error(),
			Field:      "url",
		})
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, models.ErrorCodeInternal, "Internal error", "")
	}
}

// maxRawReply bounds how much of an unparseable model reply is echoed back.
const maxRawReply = 512

func truncateRaw(raw string) string {
	if len(raw) <= maxRawReply {
		return raw
	}
	cut := maxRawReply
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut] + "...(truncated)"
}
