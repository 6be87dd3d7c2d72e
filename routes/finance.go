package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/slight125/FarmFlow/assistant"
	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
	"github.com/slight125/FarmFlow/utils"
)

func SetupFinanceRoutes(app *fiber.App) {
	// workers log work, they do not read the books
	finance := app.Group("/finance", middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleFarmer, models.RoleManager, models.RoleConsultant))
	finance.Get("/transactions", listTransactions)
	finance.Post("/transactions", createTransaction)
	finance.Get("/transactions/:id", getTransaction)
	finance.Put("/transactions/:id", updateTransaction)
	finance.Delete("/transactions/:id", deleteTransaction)
	finance.Get("/forecast", financialForecast)
}

type transactionPayload struct {
	Type            string `json:"type" validate:"required,oneof=income expense"`
	Category        string `json:"category" validate:"required"`
	Amount          string `json:"amount" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Description     string `json:"description"`
	PaymentMethod   string `json:"payment_method"`
	ReferenceNumber string `json:"reference_number"`
	Notes           string `json:"notes"`
}

func (p *transactionPayload) apply(txn *models.FinancialTransaction) error {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil || !amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be a positive number")
	}
	date, err := utils.ParseDate(p.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	txn.Type = p.Type
	txn.Category = p.Category
	txn.Amount = amount
	txn.Date = date
	txn.Description = p.Description
	txn.PaymentMethod = p.PaymentMethod
	if p.ReferenceNumber != "" {
		txn.ReferenceNumber = p.ReferenceNumber
	}
	txn.Notes = p.Notes
	return nil
}

func listTransactions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	q := database.DB.Where("user_id = ?", userID).Order("date desc, id desc")
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}
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

	var txns []models.FinancialTransaction
	if err := q.Find(&txns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list transactions"})
	}

	income, expense := decimal.Zero, decimal.Zero
	for i := range txns {
		if txns[i].Type == models.TransactionIncome {
			income = income.Add(txns[i].Amount)
		} else {
			expense = expense.Add(txns[i].Amount)
		}
	}
	return c.JSON(fiber.Map{
		"transactions":  txns,
		"total_income":  income,
		"total_expense": expense,
		"net":           income.Sub(expense),
	})
}

func getTransaction(c *fiber.Ctx) error {
	txn, err := findTransaction(c)
	if err != nil {
		return err
	}
	return c.JSON(txn)
}

func createTransaction(c *fiber.Ctx) error {
	var body transactionPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	txn := models.FinancialTransaction{UserID: middleware.UserID(c)}
	if err := body.apply(&txn); err != nil {
		return err
	}
	if txn.ReferenceNumber == "" {
		txn.ReferenceNumber = utils.GenerateReference("TXN")
	}
	if err := database.DB.Create(&txn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not record transaction"})
	}
	return c.Status(fiber.StatusCreated).JSON(txn)
}

func updateTransaction(c *fiber.Ctx) error {
	txn, err := findTransaction(c)
	if err != nil {
		return err
	}
	var body transactionPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := body.apply(txn); err != nil {
		return err
	}
	if err := database.DB.Save(txn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update transaction"})
	}
	return c.JSON(txn)
}

func deleteTransaction(c *fiber.Ctx) error {
	txn, err := findTransaction(c)
	if err != nil {
		return err
	}
	if err := database.DB.Delete(txn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete transaction"})
	}
	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}

func financialForecast(c *fiber.Ctx) error {
	forecast, err := assistant.FinancialForecast(database.DB, requestScope(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build forecast"})
	}
	return c.JSON(forecast)
}

func findTransaction(c *fiber.Ctx) (*models.FinancialTransaction, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var txn models.FinancialTransaction
	res := database.DB.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).First(&txn)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Transaction not found")
	}
	return &txn, nil
}
