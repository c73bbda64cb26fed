package client

import (
	"MovingList/internal/dto"
	"MovingList/internal/inventory"
	"MovingList/internal/mapper"
	"MovingList/internal/models"
	"context"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

func (c *Client) ListBoxes(ctx context.Context) ([]models.Box, error) {
	query := url.Values{"$orderby": {"created_at desc, id desc"}}
	var boxes []dto.BoxDTO
	if err := c.do(ctx, fiber.MethodGet, "/boxes?"+query.Encode(), nil, &boxes); err != nil {
		return nil, err
	}
	return mapper.ToBoxModels(boxes), nil
}

func (c *Client) ListItems(ctx context.Context, q inventory.ItemQuery) ([]models.Item, error) {
	query := url.Values{}
	if q.BoxID != 0 {
		query.Set("$filter", fmt.Sprintf("box_id eq '%d'", q.BoxID))
	}
	if q.OrderBy != "" {
		query.Set("$orderby", q.OrderBy)
	}
	path := "/items"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var items []dto.ItemDTO
	if err := c.do(ctx, fiber.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return mapper.ToItemModels(items), nil
}

func (c *Client) InsertBox(ctx context.Context, name string) (*models.Box, error) {
	var created dto.BoxDTO
	if err := c.do(ctx, fiber.MethodPost, "/boxes", map[string]string{"name": name}, &created); err != nil {
		return nil, err
	}
	box := mapper.ToBoxModel(created)
	return &box, nil
}

func (c *Client) UpdateBox(ctx context.Context, id uint, name string) error {
	return c.do(ctx, fiber.MethodPut, fmt.Sprintf("/boxes/%d", id), map[string]string{"name": name}, nil)
}

func (c *Client) DeleteBox(ctx context.Context, id uint) error {
	return c.do(ctx, fiber.MethodDelete, fmt.Sprintf("/boxes/%d", id), nil, nil)
}

func (c *Client) InsertItem(ctx context.Context, boxID uint, name string) (*models.Item, error) {
	body := map[string]interface{}{"name": name, "box_id": boxID}
	var created dto.ItemDTO
	if err := c.do(ctx, fiber.MethodPost, "/items", body, &created); err != nil {
		return nil, err
	}
	item := mapper.ToItemModel(created)
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, id uint, name string) error {
	return c.do(ctx, fiber.MethodPut, fmt.Sprintf("/items/%d", id), map[string]string{"name": name}, nil)
}

func (c *Client) DeleteItem(ctx context.Context, id uint) error {
	return c.do(ctx, fiber.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil)
}
