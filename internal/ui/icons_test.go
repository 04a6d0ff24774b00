package ui

import (
	"testing"

	fynetest "fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchboard/internal/tool"
)

func TestMain(m *testing.M) {
	fynetest.NewApp()
	m.Run()
}

func TestEveryToolHasAnIcon(t *testing.T) {
	for _, name := range tool.Names() {
		icon, err := iconFor(name)
		assert.NoError(t, err, name)
		assert.NotNil(t, icon, name)
	}
}

func TestToolbarOrderCoversRegistry(t *testing.T) {
	names := tool.Names()
	require.Len(t, toolOrder, len(names))
	for _, name := range names {
		assert.Contains(t, toolOrder, name)
	}
}

func TestUnknownToolIconFallsBack(t *testing.T) {
	icon, err := iconFor("stamp")
	assert.Error(t, err)
	assert.NotNil(t, icon, "a fallback icon keeps the button visible")
}
