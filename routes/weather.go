package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
	"github.com/slight125/FarmFlow/utils"
)

func SetupWeatherRoutes(app *fiber.App) {
	weather := app.Group("/weather", middleware.JWTMiddleware)
	weather.Get("/", listWeather)
	weather.Post("/", createWeatherReading)
	weather.Get("/:id", getWeatherReading)
	weather.Put("/:id", updateWeatherReading)
	weather.Delete("/:id", deleteWeatherReading)
}

type weatherPayload struct {
	Date            string  `json:"date" validate:"required"`
	TemperatureHigh *string `json:"temperature_high"`
	TemperatureLow  *string `json:"temperature_low"`
	Humidity        *int    `json:"humidity" validate:"omitempty,min=0,max=100"`
	Rainfall        *string `json:"rainfall"`
	WindSpeed       *string `json:"wind_speed"`
	Conditions      string  `json:"conditions"`
	Notes           string  `json:"notes"`
}

func (p *weatherPayload) apply(reading *models.WeatherData) error {
	date, err := utils.ParseDate(p.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	reading.Date = date
	for _, f := range []struct {
		raw  *string
		dst  **decimal.Decimal
		name string
	}{
		{p.TemperatureHigh, &reading.TemperatureHigh, "temperature high"},
		{p.TemperatureLow, &reading.TemperatureLow, "temperature low"},
		{p.Rainfall, &reading.Rainfall, "rainfall"},
		{p.WindSpeed, &reading.WindSpeed, "wind speed"},
	} {
		if f.raw == nil {
			continue
		}
		v, err := decimal.NewFromString(*f.raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid "+f.name)
		}
		*f.dst = &v
	}
	reading.Humidity = p.Humidity
	reading.Conditions = p.Conditions
	reading.Notes = p.Notes
	return nil
}

func listWeather(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	q := database.DB.Where("user_id = ?", userID).Order("date desc, id desc")
	if from := c.Query("start_date"); from != "" {
		d, err := utils.ParseDate(from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		q = q.Where("date >= ?", d)
	}
	if to := c.Query("end_date"); to != "" {
		d, err := utils.ParseDate(to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		q = q.Where("date <= ?", d)
	}
	var readings []models.WeatherData
	if err := q.Find(&readings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list weather data"})
	}
	return c.JSON(fiber.Map{"weather": readings})
}

func getWeatherReading(c *fiber.Ctx) error {
	reading, err := findWeatherReading(c)
	if err != nil {
		return err
	}
	return c.JSON(reading)
}

func createWeatherReading(c *fiber.Ctx) error {
	var body weatherPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	reading := models.WeatherData{UserID: middleware.UserID(c)}
	if err := body.apply(&reading); err != nil {
		return err
	}
	if err := database.DB.Create(&reading).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not record weather data"})
	}
	return c.Status(fiber.StatusCreated).JSON(reading)
}

func updateWeatherReading(c *fiber.Ctx) error {
	reading, err := findWeatherReading(c)
	if err != nil {
		return err
	}
	var body weatherPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := body.apply(reading); err != nil {
		return err
	}
	if err := database.DB.Save(reading).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update weather data"})
	}
	return c.JSON(reading)
}

func deleteWeatherReading(c *fiber.Ctx) error {
	reading, err := findWeatherReading(c)
	if err != nil {
		return err
	}
	if err := database.DB.Delete(reading).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete weather data"})
	}
	return c.JSON(fiber.Map{"message": "Weather record deleted"})
}

func findWeatherReading(c *fiber.Ctx) (*models.WeatherData, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var reading models.WeatherData
	res := database.DB.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).First(&reading)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Weather record not found")
	}
	return &reading, nil
}
