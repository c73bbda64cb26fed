package mapper

import (
	"MovingList/internal/dto"
	"MovingList/internal/models"
)

func ToBoxDTO(box *models.Box) dto.BoxDTO {
	return dto.BoxDTO{
		ID:        box.ID,
		Name:      box.Name,
		CreatedAt: box.CreatedAt,
	}
}

func ToBoxDTOs(boxes []models.Box) []dto.BoxDTO {
	boxDTOs := make([]dto.BoxDTO, 0, len(boxes))
	for i := range boxes {
		boxDTOs = append(boxDTOs, ToBoxDTO(&boxes[i]))
	}
	return boxDTOs
}

// ToBoxModel never carries items; the join attaches them on the client.
func ToBoxModel(d dto.BoxDTO) models.Box {
	return models.Box{
		BaseModel: models.BaseModel{
			ID:        d.ID,
			CreatedAt: d.CreatedAt,
		},
		Name:  d.Name,
		Items: []models.Item{},
	}
}

func ToBoxModels(boxDTOs []dto.BoxDTO) []models.Box {
	boxes := make([]models.Box, 0, len(boxDTOs))
	for _, d := range boxDTOs {
		boxes = append(boxes, ToBoxModel(d))
	}
	return boxes
}

func ToItemDTO(item *models.Item) dto.ItemDTO {
	return dto.ItemDTO{
		ID:        item.ID,
		BoxID:     item.BoxID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}
}

func ToItemDTOs(items []models.Item) []dto.ItemDTO {
	itemDTOs := make([]dto.ItemDTO, 0, len(items))
	for i := range items {
		itemDTOs = append(itemDTOs, ToItemDTO(&items[i]))
	}
	return itemDTOs
}

func ToItemModel(d dto.ItemDTO) models.Item {
	return models.Item{
		BaseModel: models.BaseModel{
			ID:        d.ID,
			CreatedAt: d.CreatedAt,
		},
		BoxID: d.BoxID,
		Name:  d.Name,
	}
}

func ToItemModels(itemDTOs []dto.ItemDTO) []models.Item {
	items := make([]models.Item, 0, len(itemDTOs))
	for _, d := range itemDTOs {
		items = append(items, ToItemModel(d))
	}
	return items
}
