package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slight125/FarmFlow/assistant"
	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
	"github.com/slight125/FarmFlow/utils"
)

func SetupTaskRoutes(app *fiber.App) {
	tasks := app.Group("/tasks", middleware.JWTMiddleware)
	tasks.Get("/", listTasks)
	tasks.Post("/", createTask)
	tasks.Get("/suggestions", taskSuggestions)
	tasks.Get("/:id", getTask)
	tasks.Put("/:id", updateTask)
	tasks.Post("/:id/complete", completeTask)
	tasks.Delete("/:id", deleteTask)
}

type taskPayload struct {
	Title              string `json:"title" validate:"required"`
	Description        string `json:"description"`
	Priority           string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status             string `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate            string `json:"due_date" validate:"required"`
	Notes              string `json:"notes"`
	RelatedCropID      *uint  `json:"related_crop_id"`
	RelatedLivestockID *uint  `json:"related_livestock_id"`
}

func (p *taskPayload) apply(c *fiber.Ctx, task *models.Task) error {
	due, err := utils.ParseDate(p.DueDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	// related records must belong to the same account
	if p.RelatedCropID != nil {
		var n int64
		database.DB.Model(&models.Crop{}).
			Where("id = ? AND user_id = ?", *p.RelatedCropID, middleware.UserID(c)).Count(&n)
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "related crop not found")
		}
	}
	if p.RelatedLivestockID != nil {
		var n int64
		database.DB.Model(&models.Livestock{}).
			Where("id = ? AND user_id = ?", *p.RelatedLivestockID, middleware.UserID(c)).Count(&n)
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "related livestock not found")
		}
	}

	task.Title = p.Title
	task.Description = p.Description
	if p.Priority != "" {
		task.Priority = p.Priority
	}
	if p.Status != "" {
		task.Status = p.Status
	}
	task.DueDate = due
	task.Notes = p.Notes
	task.RelatedCropID = p.RelatedCropID
	task.RelatedLivestockID = p.RelatedLivestockID
	return nil
}

func listTasks(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	q := database.DB.Where("user_id = ?", userID).Order("due_date, id")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		q = q.Where("priority = ?", priority)
	}
	var tasks []models.Task
	if err := q.Preload("RelatedCrop").Preload("RelatedLivestock").Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list tasks"})
	}
	if c.Query("overdue") == "true" {
		now := time.Now()
		filtered := tasks[:0]
		for i := range tasks {
			if tasks[i].IsOverdue(now) {
				filtered = append(filtered, tasks[i])
			}
		}
		tasks = filtered
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func getTask(c *fiber.Ctx) error {
	task, err := findTask(c)
	if err != nil {
		return err
	}
	return c.JSON(task)
}

func createTask(c *fiber.Ctx) error {
	var body taskPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	task := models.Task{
		UserID:   middleware.UserID(c),
		Priority: models.PriorityMedium,
		Status:   models.TaskStatusPending,
	}
	if err := body.apply(c, &task); err != nil {
		return err
	}
	if err := database.DB.Create(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create task"})
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func updateTask(c *fiber.Ctx) error {
	task, err := findTask(c)
	if err != nil {
		return err
	}
	var body taskPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := body.apply(c, task); err != nil {
		return err
	}
	if err := database.DB.Save(task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update task"})
	}
	return c.JSON(task)
}

func completeTask(c *fiber.Ctx) error {
	task, err := findTask(c)
	if err != nil {
		return err
	}
	now := time.Now()
	task.Status = models.TaskStatusCompleted
	task.CompletedDate = &now
	if err := database.DB.Save(task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not complete task"})
	}
	return c.JSON(task)
}

func deleteTask(c *fiber.Ctx) error {
	task, err := findTask(c)
	if err != nil {
		return err
	}
	if err := database.DB.Delete(task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete task"})
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}

func taskSuggestions(c *fiber.Ctx) error {
	suggestions, err := assistant.SmartTaskSuggestions(database.DB, requestScope(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build suggestions"})
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

func findTask(c *fiber.Ctx) (*models.Task, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var task models.Task
	res := database.DB.Preload("RelatedCrop").Preload("RelatedLivestock").
		Where("id = ? AND user_id = ?", id, middleware.UserID(c)).First(&task)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Task not found")
	}
	return &task, nil
}
