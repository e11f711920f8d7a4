package handlers

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/supabase-community/postgrest-go"

	"hazmana/api-gateway/config"
	"hazmana/api-gateway/middleware"
	"hazmana/api-gateway/utils"
)

// adminInvitation is an invitation row enriched with its owner's email for
// the admin list view.
type adminInvitation struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EventTitle string `json:"event_title"`
	HostName   string `json:"host_name"`
	DateTime   string `json:"date_time"`
	CreatedAt  string `json:"created_at"`
	UserID     string `json:"user_id"`
	UserEmail  string `json:"user_email"`
}

// AdminUser is one row of the admin user report.
type AdminUser struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
	InvitationCount int       `json:"invitationCount"`
}

// verifyAdmin checks the request token against gotrue and compares the
// user's email to the configured admin address. An unset ADMIN_EMAIL means
// nobody is an admin.
func verifyAdmin(c *fiber.Ctx) bool {
	adminEmail := config.AdminEmail()
	if adminEmail == "" {
		return false
	}
	user, err := config.SupabaseClient.Auth.WithToken(middleware.Token(c)).GetUser()
	if err != nil || user == nil {
		return false
	}
	return user.Email == adminEmail
}

// AdminListInvitations godoc
// @Summary List every saved invitation (admin)
// @Description Returns all invitation rows with owner emails, newest first.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Invitations retrieved"
// @Failure 403 {object} ErrorResponse "Caller is not the admin"
// @Router /admin/invitations [get]
func AdminListInvitations(c *fiber.Ctx) error {
	if !verifyAdmin(c) {
		return utils.RespondWithError(c, fiber.StatusForbidden, "Forbidden")
	}

	admin, err := config.GetServiceClient()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Service client unavailable: %v", err))
	}

	body, _, err := admin.From("invitations").
		Select("id, name, event_title, host_name, date_time, created_at, user_id", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		config.Log.WithError(err).Error("Admin failed to list invitations")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve invitations: %v", err))
	}

	var invitations []adminInvitation
	if err := json.Unmarshal(body, &invitations); err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not process invitations data")
	}

	emailByID := map[string]string{}
	if users, err := admin.Auth.AdminListUsers(); err == nil {
		for _, u := range users.Users {
			emailByID[u.ID.String()] = u.Email
		}
	}
	for i := range invitations {
		if email, ok := emailByID[invitations[i].UserID]; ok && email != "" {
			invitations[i].UserEmail = email
		} else {
			invitations[i].UserEmail = "—"
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"invitations": invitations})
}

// AdminDeleteInvitation godoc
// @Summary Delete any invitation by ID (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Delete processed"
// @Failure 400 {object} ErrorResponse "Missing id"
// @Failure 403 {object} ErrorResponse "Caller is not the admin"
// @Router /admin/invitations [delete]
func AdminDeleteInvitation(c *fiber.Ctx) error {
	if !verifyAdmin(c) {
		return utils.RespondWithError(c, fiber.StatusForbidden, "Forbidden")
	}

	var payload struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&payload); err != nil || payload.ID == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "id required")
	}

	admin, err := config.GetServiceClient()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Service client unavailable: %v", err))
	}

	_, _, err = admin.From("invitations").
		Delete("", "").
		Eq("id", payload.ID).
		Execute()
	if err != nil {
		config.Log.WithError(err).WithField("invitation_id", payload.ID).Error("Admin failed to delete invitation")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not delete invitation: %v", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

// AdminStats godoc
// @Summary Usage totals (admin)
// @Description Returns total users, total invitations, and invitations created in the last 7 days.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Stats retrieved"
// @Failure 403 {object} ErrorResponse "Caller is not the admin"
// @Router /admin/stats [get]
func AdminStats(c *fiber.Ctx) error {
	if !verifyAdmin(c) {
		return utils.RespondWithError(c, fiber.StatusForbidden, "Forbidden")
	}

	admin, err := config.GetServiceClient()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Service client unavailable: %v", err))
	}

	_, totalInvitations, err := admin.From("invitations").
		Select("id", "exact", true).
		Execute()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not count invitations: %v", err))
	}

	weekAgo := time.Now().AddDate(0, 0, -7).UTC().Format(time.RFC3339)
	_, invitationsThisWeek, err := admin.From("invitations").
		Select("id", "exact", true).
		Gte("created_at", weekAgo).
		Execute()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not count recent invitations: %v", err))
	}

	totalUsers := 0
	if users, err := admin.Auth.AdminListUsers(); err == nil {
		totalUsers = len(users.Users)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalUsers":          totalUsers,
		"totalInvitations":    totalInvitations,
		"invitationsThisWeek": invitationsThisWeek,
	})
}

// AdminListUsers godoc
// @Summary List signed-up users with invitation counts (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Users retrieved"
// @Failure 403 {object} ErrorResponse "Caller is not the admin"
// @Router /admin/users [get]
func AdminListUsers(c *fiber.Ctx) error {
	if !verifyAdmin(c) {
		return utils.RespondWithError(c, fiber.StatusForbidden, "Forbidden")
	}

	admin, err := config.GetServiceClient()
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Service client unavailable: %v", err))
	}

	usersResp, err := admin.Auth.AdminListUsers()
	if err != nil {
		config.Log.WithError(err).Error("Admin failed to list users")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not list users: %v", err))
	}

	countByUser := map[string]int{}
	if body, _, err := admin.From("invitations").Select("user_id", "", false).Execute(); err == nil {
		var rows []struct {
			UserID string `json:"user_id"`
		}
		if err := json.Unmarshal(body, &rows); err == nil {
			for _, r := range rows {
				countByUser[r.UserID]++
			}
		}
	}

	users := make([]AdminUser, 0, len(usersResp.Users))
	for _, u := range usersResp.Users {
		email := u.Email
		if email == "" {
			email = "—"
		}
		users = append(users, AdminUser{
			ID:              u.ID.String(),
			Email:           email,
			CreatedAt:       u.CreatedAt,
			InvitationCount: countByUser[u.ID.String()],
		})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": users})
}
