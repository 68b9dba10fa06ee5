package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/models"
	"github.com/petconnect/petconnect/utils"
)

// CreateProduct adds a storefront product.
func CreateProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if product.Name == "" || product.Description == "" || !models.ValidCategory(product.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name, description and a valid category are required",
		})
	}
	if product.Price < 0 || product.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "price and stock must be non-negative",
		})
	}

	if err := db.DB.Create(product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create product",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct edits a storefront product.
func UpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := db.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
		})
	}
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update product",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product from the storefront.
func DeleteProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := db.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
		})
	}
	if err := db.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete product",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// GetAllProducts lists products with optional filters.
// GET /pharmacy/products?category=&search=&featured=&includeInactive=
func GetAllProducts(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Product{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}
	// Public listing shows active products only
	if c.Query("includeInactive") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get products",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"count":    len(products),
		"products": products,
	})
}

// GetProduct returns one product.
func GetProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := db.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
		})
	}
	return c.JSON(fiber.Map{"product": product})
}

// CreateOrder places a storefront order for the authenticated user. Totals
// are computed server-side and stock is decremented in the same transaction.
func CreateOrder(c *fiber.Ctx) error {
	type orderInput struct {
		Items []struct {
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		} `json:"items"`
		ShippingAddress models.ShippingAddress `json:"shipping_address"`
		PaymentMethod   string                 `json:"payment_method"`
	}

	input := new(orderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Order must contain at least one item",
		})
	}

	userID, _ := c.Locals("userID").(uint)
	var user models.User
	db.DB.First(&user, userID)

	order := models.Order{
		UserID:          userID,
		UserName:        user.Name(),
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Status:          "pending",
		PaymentStatus:   "pending",
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "cash"
	}
	if order.UserName == "" {
		order.UserName = "Customer"
	}

	var failure *fiber.Map
	status := fiber.StatusInternalServerError

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range input.Items {
			if item.Quantity <= 0 {
				status = fiber.StatusBadRequest
				failure = &fiber.Map{"message": "Item quantity must be positive"}
				return gorm.ErrInvalidData
			}

			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error; err != nil {
				status = fiber.StatusNotFound
				failure = &fiber.Map{"message": fmt.Sprintf("Product with ID %d not found", item.ProductID)}
				return err
			}

			if product.Stock < item.Quantity {
				status = fiber.StatusBadRequest
				failure = &fiber.Map{"message": fmt.Sprintf("Insufficient stock for %s. Available: %d", product.Name, product.Stock)}
				return gorm.ErrInvalidData
			}

			order.TotalAmount += product.Price * float64(item.Quantity)
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    item.Quantity,
			})

			if err := tx.Model(&product).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		if failure != nil {
			return c.Status(status).JSON(*failure)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create order",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetPharmacyOrders lists all orders, optionally filtered by status.
func GetPharmacyOrders(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get orders",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"count":  len(orders),
		"orders": orders,
	})
}

// GetUserOrders lists the authenticated user's own orders.
func GetUserOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	var orders []models.Order
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get orders",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"count":  len(orders),
		"orders": orders,
	})
}

// UpdateOrderStatus sets order and/or payment status.
func UpdateOrderStatus(c *fiber.Ctx) error {
	type statusInput struct {
		Status        string `json:"status"`
		PaymentStatus string `json:"payment_status"`
	}

	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var order models.Order
	if err := db.DB.First(&order, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
		})
	}

	if input.Status != "" {
		order.Status = input.Status
	}
	if input.PaymentStatus != "" {
		order.PaymentStatus = input.PaymentStatus
	}

	if err := db.DB.Save(&order).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update order status",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
		"order":   order,
	})
}
