package main

import "github.com/google/go-cmp/cmp"

func (m *model) recordAction(actionType ActionType, before, after CurveState) {
	if cmp.Equal(before, after) {
		return
	}
	m.undoStack = append(m.undoStack, Action{
		Type:    actionType,
		Data:    after,
		Inverse: before,
	})
	if len(m.undoStack) > maxHistory {
		m.undoStack = m.undoStack[len(m.undoStack)-maxHistory:]
	}
	m.redoStack = m.redoStack[:0]
}

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	m.interaction.Reset()
	m.state = action.Inverse
	m.redoStack = append(m.redoStack, action)
	m.clampFocus()
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	m.interaction.Reset()
	m.state = action.Data
	m.undoStack = append(m.undoStack, action)
	m.clampFocus()
}

// applyUpdate runs a parameter update through the state and records it.
func (m *model) applyUpdate(u Parameters) {
	before := m.state
	m.state = m.state.Apply(u)
	m.recordAction(ActionUpdateParameters, before, m.state)
	m.clampFocus()
}

func (m *model) selectFamily(f Family) {
	if f == m.state.Active {
		return
	}
	before := m.state
	m.interaction.Reset()
	m.state = m.state.WithFamily(f)
	m.focus = 0
	m.recordAction(ActionSelectFamily, before, m.state)
}
