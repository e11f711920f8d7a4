package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"hazmana/api-gateway/models"
	"hazmana/api-gateway/utils"
)

// proxyClient bounds upstream image fetches so a stalling host cannot pin
// the handler.
var proxyClient = &http.Client{Timeout: 30 * time.Second}

// GenerateBackgroundRequest defines the request body for AI background
// generation. Width/height default to the portrait canvas preset.
type GenerateBackgroundRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// GenerateBackground godoc
// @Summary Generate an AI background image
// @Description Forwards the prompt to the external image-generation service and returns the resulting image URL.
// @Tags images
// @Accept json
// @Produce json
// @Param request body GenerateBackgroundRequest true "Generation prompt"
// @Success 200 {object} map[string]interface{} "Image generated"
// @Failure 400 {object} ErrorResponse "Missing prompt"
// @Failure 502 {object} ErrorResponse "Image service failed"
// @Router /generate-background [post]
func (h *ApplicationHandler) GenerateBackground(c *fiber.Ctx) error {
	payload := new(GenerateBackgroundRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if strings.TrimSpace(payload.Prompt) == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "A prompt is required.")
	}

	if payload.Width <= 0 || payload.Height <= 0 {
		size := models.GetSizeByKey("portrait")
		payload.Width, payload.Height = size.Width, size.Height
	}

	url, err := h.ImageGen.GenerateBackground(c.Context(), payload.Prompt, payload.Width, payload.Height)
	if err != nil {
		h.Logger.WithError(err).Error("Background generation failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway, fmt.Sprintf("Could not generate background: %v", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}

// ProxyImage godoc
// @Summary Fetch a remote image as a data URL
// @Description Downloads the image server-side and returns it base64-encoded, so the canvas export is not tainted by cross-origin pixels.
// @Tags images
// @Produce json
// @Param url query string true "Remote image URL"
// @Success 200 {object} map[string]interface{} "Image proxied"
// @Failure 400 {object} ErrorResponse "Missing url param"
// @Failure 502 {object} ErrorResponse "Upstream fetch failed"
// @Router /proxy-image [get]
func ProxyImage(c *fiber.Ctx) error {
	url := c.Query("url")
	if url == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Missing url param")
	}

	resp, err := proxyClient.Get(url)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Proxy error")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return utils.RespondWithError(c, fiber.StatusBadGateway, "Failed to fetch image")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Proxy error")
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)),
	})
}
