package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
	"github.com/slight125/FarmFlow/utils"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", register)
	auth.Post("/login", login)

	profile := app.Group("/profile", middleware.JWTMiddleware)
	profile.Get("/", getProfile)
	profile.Put("/", updateProfile)
}

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=farmer manager worker consultant"`
	FarmName string `json:"farm_name"`
	Location string `json:"location"`
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func register(c *fiber.Ctx) error {
	var body registerPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.User
	database.DB.Where("email = ?", body.Email).First(&existing)
	if existing.ID != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	role := body.Role
	if role == "" {
		role = models.RoleFarmer
	}
	user := models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: hash,
		Profile: models.UserProfile{
			Role:     role,
			FarmName: body.FarmName,
			Location: body.Location,
		},
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create user"})
	}

	token, err := signToken(user.ID, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not sign token"})
	}
	return c.JSON(fiber.Map{"token": token})
}

func login(c *fiber.Ctx) error {
	var body loginPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	database.DB.Preload("Profile").Where("email = ?", body.Email).First(&user)
	if user.ID == 0 || !utils.CheckPassword(user.Password, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := signToken(user.ID, user.Profile.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not sign token"})
	}
	return c.JSON(fiber.Map{"token": token})
}

func signToken(userID uint, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

type profilePayload struct {
	Phone    string  `json:"phone"`
	FarmName string  `json:"farm_name"`
	Location string  `json:"location"`
	FarmSize *string `json:"farm_size"`
}

func getProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}
	return c.JSON(profile)
}

func updateProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	var profile models.UserProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	var body profilePayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	profile.Phone = body.Phone
	profile.FarmName = body.FarmName
	profile.Location = body.Location
	if body.FarmSize != nil {
		size, err := decimal.NewFromString(*body.FarmSize)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid farm size"})
		}
		profile.FarmSize = &size
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update profile"})
	}
	return c.JSON(profile)
}
