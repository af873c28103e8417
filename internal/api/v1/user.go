package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zodyking/textnow-gateway/internal/service"
)

func (h *Handler) SignUp(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SignUpRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	cmd := service.SignUpCommand{
		Username:        request.Username,
		Password:        request.Password,
		ConfirmPassword: request.ConfirmPassword,
		TextNowUsername: request.TextNowUsername,
		SIDCookie:       request.SIDCookie,
		CSRFToken:       request.CSRFToken,
	}

	view, err := h.users.SignUp(ctx, cmd)
	if err != nil {
		return err
	}

	h.logger.Info("User signed up", zap.String("username", view.Username))

	return c.Status(fiber.StatusCreated).JSON(UserResponse{User: view})
}

func (h *Handler) LogIn(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request LogInRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	view, err := h.users.LogIn(ctx, service.LogInCommand{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(UserResponse{User: view})
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request GetUserRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	view, err := h.users.Get(ctx, request.UserID)
	if err != nil {
		return err
	}

	return c.JSON(UserResponse{User: view})
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request UpdateUserRequest
	if err := h.bind(c, &request); err != nil {
		return err
	}

	cmd := service.UpdateUserCommand{
		UserID:          request.UserID,
		Username:        request.Username,
		TextNowUsername: request.TextNowUsername,
		SIDCookie:       request.SIDCookie,
		CSRFToken:       request.CSRFToken,
		GeminiAPIKey:    request.GeminiAPIKey,
	}

	view, err := h.users.Update(ctx, cmd)
	if err != nil {
		return err
	}

	h.logger.Info("User settings updated", zap.String("userID", view.ID))

	return c.JSON(UserResponse{User: view})
}
