package inventory

import (
	"MovingList/internal/models"
	"strings"
)

// Join attaches each item to the box whose id equals its box_id, keeping the
// items in fetch order. Items whose box is unknown are dropped.
func Join(boxes []models.Box, items []models.Item) []models.Box {
	index := make(map[uint]int, len(boxes))
	joined := make([]models.Box, len(boxes))
	for i, box := range boxes {
		box.Items = []models.Item{}
		joined[i] = box
		index[box.ID] = i
	}
	for _, item := range items {
		i, ok := index[item.BoxID]
		if !ok {
			continue
		}
		joined[i].Items = append(joined[i].Items, item)
	}
	return joined
}

// Filter keeps boxes whose name, or any of whose item names, contains query
// case-insensitively. Matching boxes keep all of their items. An empty query
// returns boxes itself.
func Filter(boxes []models.Box, query string) []models.Box {
	if query == "" {
		return boxes
	}
	needle := strings.ToLower(query)
	matched := make([]models.Box, 0, len(boxes))
	for _, box := range boxes {
		if boxMatches(box, needle) {
			matched = append(matched, box)
		}
	}
	return matched
}

func boxMatches(box models.Box, needle string) bool {
	if strings.Contains(strings.ToLower(box.Name), needle) {
		return true
	}
	for _, item := range box.Items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return true
		}
	}
	return false
}
