package handlers

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rdmitr/portfolio-cms/internal/models"
	"github.com/rdmitr/portfolio-cms/internal/storage"
	"github.com/rdmitr/portfolio-cms/internal/store"
)

// Media handles uploaded assets: the file goes to the object store, its
// metadata into the media collection.
type Media struct {
	store   store.Collection[models.Media]
	objects *storage.ObjectStore
}

func NewMedia(s store.Collection[models.Media], objects *storage.ObjectStore) *Media {
	return &Media{store: s, objects: objects}
}

func (h *Media) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to open file"})
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
	url, err := h.objects.Put(c.Context(), objectName, file, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	media, err := h.store.Create(c.Context(), models.Media{
		Filename:    fileHeader.Filename,
		ObjectName:  objectName,
		URL:         url,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		// The object is already uploaded; drop it again so the store and
		// bucket stay in sync.
		_ = h.objects.Remove(c.Context(), objectName)
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

func (h *Media) List(c *fiber.Ctx) error {
	media, err := h.store.ListAll(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(media)
}

func (h *Media) Delete(c *fiber.Ctx) error {
	media, err := h.store.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	if err := h.objects.Remove(c.Context(), media.ObjectName); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.store.DeleteByID(c.Context(), media.ID.Hex()); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Media deleted"})
}
