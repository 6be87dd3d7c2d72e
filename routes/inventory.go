package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
	"github.com/slight125/FarmFlow/utils"
)

func SetupInventoryRoutes(app *fiber.App) {
	inv := app.Group("/inventory", middleware.JWTMiddleware)
	inv.Get("/", listInventory)
	inv.Post("/", createInventoryItem)
	inv.Get("/:id", getInventoryItem)
	inv.Put("/:id", updateInventoryItem)
	inv.Delete("/:id", deleteInventoryItem)
}

type inventoryPayload struct {
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category" validate:"required,oneof=seed fertilizer pesticide equipment feed medicine fuel other"`
	Quantity     string `json:"quantity" validate:"required"`
	Unit         string `json:"unit" validate:"required"`
	ReorderLevel string `json:"reorder_level"`
	CostPerUnit  string `json:"cost_per_unit"`
	Supplier     string `json:"supplier"`
	PurchaseDate string `json:"purchase_date"`
	ExpiryDate   string `json:"expiry_date"`
	Location     string `json:"location"`
	Notes        string `json:"notes"`
}

func (p *inventoryPayload) apply(item *models.InventoryItem) error {
	qty, err := decimal.NewFromString(p.Quantity)
	if err != nil || qty.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be zero or a positive number")
	}
	item.Quantity = qty
	if p.ReorderLevel != "" {
		lvl, err := decimal.NewFromString(p.ReorderLevel)
		if err != nil || lvl.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid reorder level")
		}
		item.ReorderLevel = lvl
	}
	if p.CostPerUnit != "" {
		cost, err := decimal.NewFromString(p.CostPerUnit)
		if err != nil || cost.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid cost per unit")
		}
		item.CostPerUnit = cost
	}
	purchase, err := utils.ParseOptionalDate(p.PurchaseDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	expiry, err := utils.ParseOptionalDate(p.ExpiryDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	item.Name = p.Name
	item.Category = p.Category
	item.Unit = p.Unit
	item.Supplier = p.Supplier
	item.PurchaseDate = purchase
	item.ExpiryDate = expiry
	item.Location = p.Location
	item.Notes = p.Notes
	return nil
}

func listInventory(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	q := database.DB.Where("user_id = ?", userID).Order("name")
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}
	var items []models.InventoryItem
	if err := q.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list inventory"})
	}
	// the low-stock filter needs the decimal comparison, so it runs in Go
	if c.Query("low_stock") == "true" {
		filtered := items[:0]
		for i := range items {
			if items[i].NeedsReorder() {
				filtered = append(filtered, items[i])
			}
		}
		items = filtered
	}
	totalValue := decimal.Zero
	for i := range items {
		totalValue = totalValue.Add(items[i].TotalValue())
	}
	return c.JSON(fiber.Map{"items": items, "total_value": totalValue})
}

func getInventoryItem(c *fiber.Ctx) error {
	item, err := findInventoryItem(c)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

func createInventoryItem(c *fiber.Ctx) error {
	var body inventoryPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	item := models.InventoryItem{UserID: middleware.UserID(c)}
	if err := body.apply(&item); err != nil {
		return err
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create inventory item"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func updateInventoryItem(c *fiber.Ctx) error {
	item, err := findInventoryItem(c)
	if err != nil {
		return err
	}
	var body inventoryPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := body.apply(item); err != nil {
		return err
	}
	if err := database.DB.Save(item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update inventory item"})
	}
	return c.JSON(item)
}

func deleteInventoryItem(c *fiber.Ctx) error {
	item, err := findInventoryItem(c)
	if err != nil {
		return err
	}
	if err := database.DB.Delete(item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete inventory item"})
	}
	return c.JSON(fiber.Map{"message": "Inventory item deleted"})
}

func findInventoryItem(c *fiber.Ctx) (*models.InventoryItem, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var item models.InventoryItem
	res := database.DB.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).First(&item)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
	}
	return &item, nil
}
