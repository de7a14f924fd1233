package api

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ragchat/ingest"
	"ragchat/types"
)

type IngestHandler struct {
	service   *ingest.Service
	uploadDir string
}

func NewIngestHandler(s *ingest.Service, uploadDir string) *IngestHandler {
	return &IngestHandler{
		service:   s,
		uploadDir: uploadDir,
	}
}

// HandleUpload answers POST /upload: the multipart PDF is saved to
// scratch storage, indexed, and removed whatever the outcome.
func (h *IngestHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewError(fiber.StatusBadRequest, "No file uploaded")
	}

	if !isPDF(fileHeader.Header.Get("Content-Type"), fileHeader.Filename) {
		return NewError(fiber.StatusBadRequest, "Unsupported file type. Please upload PDF files.")
	}

	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(h.uploadDir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveFile(fileHeader, path); err != nil {
		return err
	}
	defer os.Remove(path)
	log.Printf("[UPLOAD] file saved to: %s", path)

	count, err := h.service.IngestPDF(c.Context(), path)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":        "File uploaded and indexed successfully",
		"documentsCount": count,
	})
}

// isPDF accepts the declared content type or a .pdf extension;
// browsers are inconsistent about multipart part content types.
func isPDF(contentType, filename string) bool {
	return contentType == "application/pdf" ||
		strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// HandleIndexText answers POST /index-text.
func (h *IngestHandler) HandleIndexText(c *fiber.Ctx) error {
	var params types.TextParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewError(fiber.StatusBadRequest, "No text provided")
	}

	count, err := h.service.IngestText(c.Context(), params.Text)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":     "Text indexed successfully",
		"chunksCount": count,
	})
}

// HandleIndexWebsite answers POST /index-website.
func (h *IngestHandler) HandleIndexWebsite(c *fiber.Ctx) error {
	var params types.WebsiteParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewError(fiber.StatusBadRequest, "No URL provided")
	}

	count, err := h.service.IngestWebsite(c.Context(), params.URL)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":     "Website indexed successfully",
		"url":         params.URL,
		"chunksCount": count,
	})
}
