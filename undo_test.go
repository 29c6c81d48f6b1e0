package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordActionSkipsNoops(t *testing.T) {
	m := initialModel(nil)
	m.recordAction(ActionUpdateParameters, m.state, m.state)
	assert.Empty(t, m.undoStack)

	// an equal but separately allocated state is still a no-op
	m.recordAction(ActionUpdateParameters, m.state, m.state.Apply(Parameters{}))
	assert.Empty(t, m.undoStack)

	// replacing a parameter set with an equal copy is not a change either
	m.applyUpdate(m.state.Params.Clone())
	assert.Empty(t, m.undoStack)
}

func TestRecordActionClearsRedo(t *testing.T) {
	m := initialModel(nil)
	m.selectFamily(FamilyBezier)
	m.undo()
	require.Len(t, m.redoStack, 1)

	m.selectFamily(FamilyExponential)
	assert.Empty(t, m.redoStack)
	m.redo()
	assert.Equal(t, FamilyExponential, m.state.Active)
}

func TestHistoryIsBounded(t *testing.T) {
	m := initialModel(nil)
	for i := range maxHistory + 25 {
		m.applyUpdate(Parameters{Trigonometric: &TrigonometricParams{Amplitude: float64(i + 2)}})
	}
	require.Len(t, m.undoStack, maxHistory)
	assert.Equal(t, float64(maxHistory+26), m.undoStack[maxHistory-1].Data.Params.Trigonometric.Amplitude)

	for range maxHistory + 10 {
		m.undo()
	}
	assert.Equal(t, 26.0, m.state.Params.Trigonometric.Amplitude)
	assert.Len(t, m.redoStack, maxHistory)
}

func TestUndoResetsDrag(t *testing.T) {
	m := initialModel(nil)
	m.selectFamily(FamilyBezier)
	m.interaction.dragging = 1
	m.undo()

	_, ok := m.interaction.Dragging()
	assert.False(t, ok)
}
