package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"agency-service/internal/models"
	"agency-service/internal/repository"
	"agency-service/internal/services"
	"agency-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) RegisterRoutes(app *fiber.App) {
	customerGr := app.Group("agency/api/v1/customers")

	// Customer CRUD routes
	customerGr.Post("/", h.CreateCustomer)
	customerGr.Get("/", h.ListCustomers)
	customerGr.Get("/:id", h.GetCustomer)
	customerGr.Put("/:id", h.UpdateCustomer)
	customerGr.Delete("/:id", h.DeleteCustomer)

	// Customer asset routes
	customerGr.Post("/:id/assets", h.AddAsset)
}

func (h *CustomerHandler) CreateCustomer(c fiber.Ctx) error {
	var req models.CreateCustomerRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid request body"))
	}

	customer, err := h.customerService.Create(&req)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("CREATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(customer))
}

func (h *CustomerHandler) ListCustomers(c fiber.Ctx) error {
	limit := parseIntQuery(c, "limit", 50)
	offset := parseIntQuery(c, "offset", 0)

	customers, err := h.customerService.List(c.Query("q"), limit, offset)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("RETRIEVAL_FAILED", "Failed to list customers"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(customers))
}

func (h *CustomerHandler) GetCustomer(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_UUID", "Invalid customer ID format"))
	}

	detail, err := h.customerService.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				utils.CreateErrorResponse("NOT_FOUND", "Customer not found"))
		}
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("RETRIEVAL_FAILED", "Failed to retrieve customer"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(detail))
}

func (h *CustomerHandler) UpdateCustomer(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_UUID", "Invalid customer ID format"))
	}

	var req models.UpdateCustomerRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid request body"))
	}

	customer, err := h.customerService.Update(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				utils.CreateErrorResponse("NOT_FOUND", "Customer not found"))
		}
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("UPDATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(customer))
}

func (h *CustomerHandler) DeleteCustomer(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_UUID", "Invalid customer ID format"))
	}

	if err := h.customerService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				utils.CreateErrorResponse("NOT_FOUND", "Customer not found"))
		}
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("DELETE_FAILED", "Failed to delete customer"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{"deleted": id}))
}

func (h *CustomerHandler) AddAsset(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_UUID", "Invalid customer ID format"))
	}

	var req models.CreateAssetRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid request body"))
	}

	asset, err := h.customerService.AddAsset(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				utils.CreateErrorResponse("NOT_FOUND", "Customer not found"))
		}
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("CREATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(asset))
}

// parseIntQuery reads a non-negative integer query parameter, falling back
// to def on anything unreadable.
func parseIntQuery(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return def
	}
	return value
}
