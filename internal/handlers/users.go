package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rdmitr/portfolio-cms/internal/models"
	"github.com/rdmitr/portfolio-cms/internal/services"
	"github.com/rdmitr/portfolio-cms/internal/store"
)

// Users manages CMS accounts. Unlike the generic controller, creation
// validates every field and updates treat the password specially: it is
// re-hashed only when a non-empty value is supplied, and never echoed
// back.
type Users struct {
	store store.Collection[models.User]
}

func NewUsers(s store.Collection[models.User]) *Users {
	return &Users{store: s}
}

type userRequest struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Role     models.Role   `json:"role"`
	Status   models.Status `json:"status"`
}

func (h *Users) List(c *fiber.Ctx) error {
	users, err := h.store.ListAll(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(users)
}

func (h *Users) Create(c *fiber.Ctx) error {
	var request userRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if request.Name == "" || request.Email == "" || request.Password == "" ||
		request.Role == "" || request.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
	}
	if !request.Role.Valid() || !request.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role or status"})
	}

	hash, err := services.HashPassword(request.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	user, err := h.store.Create(c.Context(), models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hash,
		Role:     request.Role,
		Status:   request.Status,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email already in use"})
	}
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *Users) Update(c *fiber.Ctx) error {
	body := bson.M{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	// Only known fields pass through; the password is dropped unless a
	// non-empty replacement was supplied.
	fields := bson.M{}
	for _, key := range []string{"name", "email", "role", "status"} {
		if value, ok := body[key]; ok {
			fields[key] = value
		}
	}
	if value, ok := fields["role"]; ok {
		role, ok := value.(string)
		if !ok || !models.Role(role).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role or status"})
		}
	}
	if value, ok := fields["status"]; ok {
		status, ok := value.(string)
		if !ok || !models.Status(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role or status"})
		}
	}
	if password, ok := body["password"].(string); ok && password != "" {
		hash, err := services.HashPassword(password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		fields["password"] = hash
	}

	user, err := h.store.UpdateByID(c.Context(), c.Params("id"), fields)
	if errors.Is(err, store.ErrDuplicate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email already in use"})
	}
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(user)
}

func (h *Users) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteByID(c.Context(), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
