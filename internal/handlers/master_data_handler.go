package handlers

import (
	"errors"
	"net/http"

	"agency-service/internal/models"
	"agency-service/internal/repository"
	"agency-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// MasterDataHandler serves the curated reference data the import pipeline
// matches against: insurers, categories, and products.
type MasterDataHandler struct {
	companies *repository.CompanyRepository
	products  *repository.ProductRepository
}

func NewMasterDataHandler(companies *repository.CompanyRepository, products *repository.ProductRepository) *MasterDataHandler {
	return &MasterDataHandler{companies: companies, products: products}
}

func (h *MasterDataHandler) RegisterRoutes(app *fiber.App) {
	masterGr := app.Group("agency/api/v1/master")

	// Reference data routes
	masterGr.Get("/companies", h.ListCompanies)
	masterGr.Post("/companies", h.CreateCompany)
	masterGr.Delete("/companies/:id", h.DeleteCompany)
	masterGr.Get("/categories", h.ListCategories)
	masterGr.Get("/products", h.ListProducts)
}

func (h *MasterDataHandler) ListCompanies(c fiber.Ctx) error {
	companies, err := h.companies.GetAll()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("RETRIEVAL_FAILED", "Failed to list companies"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(companies))
}

func (h *MasterDataHandler) CreateCompany(c fiber.Ctx) error {
	var company models.Company
	if err := c.Bind().Body(&company); err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_BODY", "Invalid request body"))
	}
	if company.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("MISSING_NAME", "name is required"))
	}

	if err := h.companies.Create(&company); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("CREATE_FAILED", "Failed to create company"))
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(company))
}

func (h *MasterDataHandler) DeleteCompany(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_UUID", "Invalid company ID format"))
	}

	if err := h.companies.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				utils.CreateErrorResponse("NOT_FOUND", "Company not found"))
		}
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("DELETE_FAILED", "Failed to delete company"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{"deleted": id}))
}

func (h *MasterDataHandler) ListCategories(c fiber.Ctx) error {
	categories, err := h.products.GetAllCategories()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("RETRIEVAL_FAILED", "Failed to list categories"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(categories))
}

func (h *MasterDataHandler) ListProducts(c fiber.Ctx) error {
	products, err := h.products.GetAllProducts()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("RETRIEVAL_FAILED", "Failed to list products"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(products))
}
