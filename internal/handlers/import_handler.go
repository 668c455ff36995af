package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"agency-service/internal/database/minio"
	"agency-service/internal/database/redis"
	"agency-service/internal/excel"
	"agency-service/internal/services"
	"agency-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

// maxImportFileSize caps uploads at 10 MB; production sheets run a few
// hundred kilobytes.
const maxImportFileSize = 10 << 20

type ImportHandler struct {
	importService *services.PolicyImportService
	archive       *minio.MinioClient
	cache         *redis.SummaryCache
}

func NewImportHandler(importService *services.PolicyImportService, archive *minio.MinioClient, cache *redis.SummaryCache) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		archive:       archive,
		cache:         cache,
	}
}

func (h *ImportHandler) RegisterRoutes(app *fiber.App) {
	importGr := app.Group("agency/api/v1/import")

	// Bulk policy import routes
	importGr.Post("/policies", h.ImportPolicies)
	importGr.Get("/policies/last", h.LastImportSummary)
}

// ImportPolicies accepts an xlsx upload and runs the bulk import pipeline,
// returning the per-row outcome counters.
func (h *ImportHandler) ImportPolicies(c fiber.Ctx) error {
	userID := c.Get("X-User-ID")
	if userID == "" {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("UNAUTHORIZED", "User ID is required"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("MISSING_FILE", "A file field is required"))
	}
	if fileHeader.Size > maxImportFileSize {
		return c.Status(http.StatusRequestEntityTooLarge).JSON(
			utils.CreateErrorResponse("FILE_TOO_LARGE", "Import file exceeds the 10MB limit"))
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("UNSUPPORTED_FORMAT", "Only .xlsx files are supported"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("UNREADABLE_FILE", "Failed to open uploaded file"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("UNREADABLE_FILE", "Failed to read uploaded file"))
	}

	// Archive the raw upload before parsing so failed imports stay auditable.
	if h.archive != nil {
		if _, err := h.archive.ArchiveImportFile(c.Context(), fileHeader.Filename, data); err != nil {
			slog.Warn("failed to archive import file", "file", fileHeader.Filename, "error", err)
		}
	}

	rows, err := excel.ReadPolicyRows(bytes.NewReader(data))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_WORKBOOK", err.Error()))
	}

	summary, err := h.importService.ImportPolicies(c.Context(), userID, rows)
	if err != nil {
		slog.Error("policy import aborted", "file", fileHeader.Filename, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("IMPORT_FAILED", "Failed to run policy import"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(summary))
}

// LastImportSummary returns the cached outcome of the most recent import.
func (h *ImportHandler) LastImportSummary(c fiber.Ctx) error {
	if h.cache == nil {
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", "No import summary available"))
	}

	summary, err := h.cache.LastSummary(c.Context())
	if err != nil {
		if errors.Is(err, redis.ErrCacheMiss) {
			return c.Status(http.StatusNotFound).JSON(
				utils.CreateErrorResponse("NOT_FOUND", "No import summary available"))
		}
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("RETRIEVAL_FAILED", "Failed to read last import summary"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(summary))
}
