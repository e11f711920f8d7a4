package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/supabase-community/postgrest-go"

	"hazmana/api-gateway/config"
	"hazmana/api-gateway/middleware"
	"hazmana/api-gateway/models"
	"hazmana/api-gateway/utils"
)

var validate = validator.New()

// invitationColumns is the projection used for list views; settings is
// included so a saved design can be reopened from the list.
const invitationColumns = "id, name, event_title, host_name, date_time, created_at, settings"

// CreateInvitationRequest defines the expected request body for saving an
// invitation. Name is required; everything else is the design state.
type CreateInvitationRequest struct {
	Name       string                    `json:"name" validate:"required"`
	EventTitle string                    `json:"event_title"`
	HostName   string                    `json:"host_name"`
	DateTime   string                    `json:"date_time"`
	Settings   models.InvitationSettings `json:"settings"`
}

// ListInvitations godoc
// @Summary List the caller's saved invitations
// @Description Returns the authenticated user's invitations, newest first. RLS scopes rows to the token's owner.
// @Tags invitations
// @Produce json
// @Success 200 {object} map[string]interface{} "Invitations retrieved"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /invitations [get]
func ListInvitations(c *fiber.Ctx) error {
	client, err := config.NewAuthenticatedClient(middleware.Token(c))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not reach database: %v", err))
	}

	body, _, err := client.From("invitations").
		Select(invitationColumns, "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		config.Log.WithError(err).Error("Failed to list invitations")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve invitations: %v", err))
	}

	var invitations []models.Invitation
	if err := json.Unmarshal(body, &invitations); err != nil {
		config.Log.WithError(err).Error("Failed to unmarshal invitations")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process invitations data")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"invitations": invitations})
}

// CreateInvitation godoc
// @Summary Save an invitation
// @Description Creates a new invitation row owned by the token's user. Saves never update in place; re-saving creates a new record.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body CreateInvitationRequest true "Invitation to save"
// @Success 201 {object} map[string]interface{} "Invitation created"
// @Failure 400 {object} ErrorResponse "Invalid body or missing name"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /invitations [post]
func CreateInvitation(c *fiber.Ctx) error {
	token := middleware.Token(c)

	payload := new(CreateInvitationRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse invitation JSON: %v", err))
	}
	payload.Name = strings.TrimSpace(payload.Name)

	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Validation failed: %s", strings.Join(utils.FormatValidationErrors(err), "; ")))
	}

	user, err := config.SupabaseClient.Auth.WithToken(token).GetUser()
	if err != nil || user == nil {
		return utils.RespondWithError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	client, err := config.NewAuthenticatedClient(token)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not reach database: %v", err))
	}

	row := map[string]interface{}{
		"name":        payload.Name,
		"event_title": payload.EventTitle,
		"host_name":   payload.HostName,
		"date_time":   payload.DateTime,
		"settings":    payload.Settings,
		"user_id":     user.ID.String(),
	}

	body, _, err := client.From("invitations").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		config.Log.WithError(err).Error("Failed to insert invitation")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not create invitation: %v", err))
	}

	var results []models.Invitation
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		config.Log.WithError(err).Error("Failed to unmarshal created invitation")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process invitation creation response")
	}

	config.Log.WithField("invitation_id", results[0].ID).Info("Invitation created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invitation": results[0]})
}

// GetInvitation godoc
// @Summary Fetch one invitation by ID
// @Tags invitations
// @Produce json
// @Success 200 {object} map[string]interface{} "Invitation retrieved"
// @Failure 404 {object} ErrorResponse "Not found or not owned by caller"
// @Router /invitations/{id} [get]
func GetInvitation(c *fiber.Ctx) error {
	id := c.Params("id")

	client, err := config.NewAuthenticatedClient(middleware.Token(c))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not reach database: %v", err))
	}

	body, _, err := client.From("invitations").
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve invitation %s: %v", id, err))
	}

	var results []models.Invitation
	if err := json.Unmarshal(body, &results); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process invitation data")
	}
	if len(results) == 0 {
		return utils.RespondWithError(c, fiber.StatusNotFound, fmt.Sprintf("Invitation %s not found", id))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"invitation": results[0]})
}

// DeleteInvitation godoc
// @Summary Delete one invitation by ID
// @Description Deletes the row if the token's user owns it; RLS makes deleting another user's row a silent no-op.
// @Tags invitations
// @Produce json
// @Success 200 {object} map[string]interface{} "Delete processed"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /invitations/{id} [delete]
func DeleteInvitation(c *fiber.Ctx) error {
	id := c.Params("id")

	client, err := config.NewAuthenticatedClient(middleware.Token(c))
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not reach database: %v", err))
	}

	_, _, err = client.From("invitations").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("invitation_id", id).Error("Failed to delete invitation")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not delete invitation %s: %v", id, err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
