package main

func (m *model) handleNavigation(key string) {
	switch key {
	case "tab", "j", "down":
		m.moveFocus(1)
	case "shift+tab", "k", "up":
		m.moveFocus(-1)
	default:
		m.stepFocused(m.getStepDirection(key) * m.getStepSpeed(key))
	}
}

func (m *model) moveFocus(delta int) {
	n := len(fieldsFor(m.state))
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *model) clampFocus() {
	n := len(fieldsFor(m.state))
	if m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

func (m *model) stepFocused(dir int) {
	if dir == 0 {
		return
	}
	fields := fieldsFor(m.state)
	if m.focus < 0 || m.focus >= len(fields) {
		return
	}
	m.applyUpdate(fields[m.focus].step(dir))
}

func (m *model) getStepDirection(key string) int {
	switch key {
	case "l", "right", "L", "shift+right", "+", "=":
		return 1
	case "h", "left", "H", "shift+left", "-", "_":
		return -1
	default:
		return 0
	}
}

func (m *model) getStepSpeed(key string) int {
	switch key {
	case "H", "L", "shift+left", "shift+right":
		return 10
	default:
		return 1
	}
}
