package main

import (
	"MovingList/internal/client"
	"MovingList/internal/inventory"
	"MovingList/internal/models"
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBoxes() []models.Box {
	return []models.Box{
		{BaseModel: models.BaseModel{ID: 2}, Name: "Garage", Items: []models.Item{}},
		{BaseModel: models.BaseModel{ID: 1}, Name: "Kitchen", Items: []models.Item{
			{BaseModel: models.BaseModel{ID: 10}, BoxID: 1, Name: "Spatula"},
			{BaseModel: models.BaseModel{ID: 11}, BoxID: 1, Name: "Pan"},
		}},
	}
}

func TestRenderBoxes(t *testing.T) {
	var out bytes.Buffer

	renderBoxes(&out, sampleBoxes())

	expected := "[2] Garage (0 items)\n\n[1] Kitchen (2 items)\n  1. Spatula\n  2. Pan\n"
	assert.Equal(t, expected, out.String())
}

func TestRenderBoxes_Empty(t *testing.T) {
	var out bytes.Buffer
	renderBoxes(&out, nil)
	assert.Equal(t, "No boxes\n", out.String())
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, sampleBoxes()))

	var views []boxView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, []string{}, views[0].Items)
	assert.Equal(t, []string{"Spatula", "Pan"}, views[1].Items)
}

func TestParseArguments(t *testing.T) {
	id, err := parseID("3")
	require.NoError(t, err)
	assert.Equal(t, uint(3), id)

	_, err = parseID("0")
	assert.ErrorIs(t, err, errBadArgument)

	index, err := parsePosition("1")
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	_, err = parsePosition("0")
	assert.ErrorIs(t, err, errBadArgument)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(fmt.Errorf("%w: name", inventory.ErrValidation)))
	assert.Equal(t, exitUserError, exitCode(errNotSignedIn))
	expired := fmt.Errorf("%w: rename_box: %w", inventory.ErrRemote, client.ErrUnauthorized)
	assert.Equal(t, exitUserError, exitCode(expired))
	assert.Equal(t, exitSysError, exitCode(fmt.Errorf("%w: boom", inventory.ErrRemote)))
}
