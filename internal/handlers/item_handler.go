package handlers

import (
	"MovingList/internal/mapper"
	"MovingList/internal/services"
	"github.com/gofiber/fiber/v2"
	"net/http"
)

type ItemHandler struct {
	service services.ItemService
}

func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		BoxID uint   `json:"box_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}
	if req.BoxID == 0 {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "box_id is required"})
	}

	item, err := h.service.CreateItem(c.UserContext(), req.BoxID, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToItemDTO(item))
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	item, err := h.service.GetItemByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(mapper.ToItemDTO(item))
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	item, err := h.service.RenameItem(c.UserContext(), id, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(mapper.ToItemDTO(item))
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid item ID"})
	}

	if err := h.service.DeleteItem(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// ListItems accepts $filter (e.g. "box_id eq '3'") and $orderby.
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.service.ItemsSearch(c.UserContext(), c.Query("$filter"), c.Query("$orderby"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToItemDTOs(items))
}
