package handlers

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ErrorResponse defines the common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ImageGeneratorInterface defines what handlers expect from the background
// generation client, decoupling them from the concrete HTTP implementation.
type ImageGeneratorInterface interface {
	GenerateBackground(ctx context.Context, prompt string, width, height int) (string, error)
	Close() error
}

// ApplicationHandler holds shared dependencies for handlers that need more
// than the package-level config globals.
type ApplicationHandler struct {
	ImageGen ImageGeneratorInterface
	Logger   *logrus.Logger
}

// NewApplicationHandler creates an ApplicationHandler with the given
// dependencies.
func NewApplicationHandler(imageGen ImageGeneratorInterface, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		ImageGen: imageGen,
		Logger:   logger,
	}
}
