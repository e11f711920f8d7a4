package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"hazmana/api-gateway/config"
	"hazmana/api-gateway/internal/svgtemplate"
	"hazmana/api-gateway/models"
)

// TemplateCatalogResponse is the catalog payload returned to the editor UI.
type TemplateCatalogResponse struct {
	Templates []models.Template `json:"templates"`
	Error     string            `json:"error,omitempty"`
}

// GetTemplates godoc
// @Summary List available invitation templates
// @Description Scans the template asset directory and returns the ordered catalog, including auto-discovered SVG text fields.
// @Tags templates
// @Produce json
// @Success 200 {object} TemplateCatalogResponse "Catalog retrieved"
// @Failure 500 {object} TemplateCatalogResponse "Discovery failed; catalog is empty"
// @Router /templates [get]
func GetTemplates(c *fiber.Ctx) error {
	dir := config.TemplatesDir()

	templates, err := svgtemplate.DiscoverCatalog(os.DirFS(dir), config.TemplatesPublicBase())
	if err != nil {
		config.Log.WithField("templates_dir", dir).WithError(err).Error("Template discovery failed")
		return c.Status(fiber.StatusInternalServerError).JSON(TemplateCatalogResponse{
			Templates: []models.Template{},
			Error:     err.Error(),
		})
	}

	config.Log.WithField("count", len(templates)).Info("Template catalog served")
	return c.Status(fiber.StatusOK).JSON(TemplateCatalogResponse{Templates: templates})
}

// GetCanvasSizes returns the blank-canvas presets for designs that start
// from scratch instead of a template.
func GetCanvasSizes(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sizes": models.CanvasSizes,
	})
}
