package handlers

import (
	"MovingList/internal/mapper"
	"MovingList/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service services.BoxService
}

func NewBoxHandler(service services.BoxService) *BoxHandler {
	return &BoxHandler{service: service}
}

type boxRequest struct {
	Name string `json:"name"`
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req boxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	box, err := h.service.CreateBox(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToBoxDTO(box))
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	box, err := h.service.GetBoxByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(mapper.ToBoxDTO(box))
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	var req boxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	box, err := h.service.RenameBox(c.UserContext(), id, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(mapper.ToBoxDTO(box))
}

// DeleteBox removes the box together with every item it holds.
func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	if err := h.service.DeleteBox(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	boxes, err := h.service.GetBoxes(c.UserContext(), c.Query("$orderby"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToBoxDTOs(boxes))
}
