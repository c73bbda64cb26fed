package inventory

import (
	"MovingList/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin_AttachesEachItemOnce(t *testing.T) {
	boxes := []models.Box{box(2, "Garage"), box(1, "Kitchen")}
	items := []models.Item{
		item(10, 1, "Spatula"),
		item(11, 2, "Drill"),
		item(12, 1, "Pan"),
		item(13, 99, "Orphan"),
	}

	joined := Join(boxes, items)

	require.Len(t, joined, 2)
	assert.Equal(t, "Garage", joined[0].Name)
	assert.Equal(t, []string{"Drill"}, itemNames(joined[0]))
	assert.Equal(t, []string{"Spatula", "Pan"}, itemNames(joined[1]))

	seen := map[uint]int{}
	for _, b := range joined {
		for _, it := range b.Items {
			assert.Equal(t, b.ID, it.BoxID)
			seen[it.ID]++
		}
	}
	assert.Equal(t, map[uint]int{10: 1, 11: 1, 12: 1}, seen)
}

func TestJoin_EmptyBoxesGetEmptyItems(t *testing.T) {
	joined := Join([]models.Box{{BaseModel: models.BaseModel{ID: 1}, Name: "Kitchen"}}, nil)

	require.Len(t, joined, 1)
	assert.NotNil(t, joined[0].Items)
	assert.Empty(t, joined[0].Items)
}

func TestJoin_DoesNotMutateInput(t *testing.T) {
	boxes := []models.Box{box(1, "Kitchen")}
	Join(boxes, []models.Item{item(10, 1, "Pan")})

	assert.Empty(t, boxes[0].Items)
}

func TestFilter_EmptyQueryReturnsSameSlice(t *testing.T) {
	boxes := []models.Box{box(1, "Kitchen"), box(2, "Garage")}

	filtered := Filter(boxes, "")

	require.Len(t, filtered, len(boxes))
	assert.Same(t, &boxes[0], &filtered[0])
}

func TestFilter_BoxNameCaseInsensitive(t *testing.T) {
	boxes := []models.Box{box(1, "Kitchen"), box(2, "Garage")}

	filtered := Filter(boxes, "kitch")

	require.Len(t, filtered, 1)
	assert.Equal(t, "Kitchen", filtered[0].Name)
}

func TestFilter_ItemMatchKeepsWholeBox(t *testing.T) {
	boxes := []models.Box{
		box(1, "Kitchen", item(10, 1, "Spatula"), item(11, 1, "Pan")),
		box(2, "Garage", item(12, 2, "Drill")),
	}

	filtered := Filter(boxes, "SPAT")

	require.Len(t, filtered, 1)
	assert.Equal(t, "Kitchen", filtered[0].Name)
	assert.Equal(t, []string{"Spatula", "Pan"}, itemNames(filtered[0]))
}

func TestFilter_SubstringNotToken(t *testing.T) {
	boxes := []models.Box{box(1, "Bathroom cabinet"), box(2, "Office")}

	assert.Len(t, Filter(boxes, "room cab"), 1)
	assert.Empty(t, Filter(boxes, "cabinet bathroom"))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	boxes := []models.Box{box(1, "Kitchen"), box(2, "Garage")}

	Filter(boxes, "garage")

	assert.Equal(t, "Kitchen", boxes[0].Name)
	assert.Len(t, boxes, 2)
}
