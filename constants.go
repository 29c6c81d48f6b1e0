package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeDragging
	ModeHelp
)

type Family int

const (
	FamilyPolynomial Family = iota
	FamilyBezier
	FamilyParametric
	FamilyTrigonometric
	FamilyExponential
	// Reserved families are selectable but draw nothing beyond the grid.
	FamilySpline
	FamilyConic
	FamilySpecial
)

type ParametricFunc int

const (
	FuncCos ParametricFunc = iota
	FuncSin
	FuncIdentity
	FuncSquare
)

type ActionType int

const (
	ActionUpdateParameters ActionType = iota
	ActionSelectFamily
	ActionDragPoint
)

type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
	PointerLeave
	PointerDoubleClick
	PointerContextMenu
)

// Logical viewport. Not user configurable.
const (
	viewXMin    = -10.0
	viewXMax    = 10.0
	viewYMin    = -10.0
	viewYMax    = 10.0
	viewPadding = 60.0
)

const (
	sampleStep      = 0.01
	hitRadius       = 0.5
	minControlPts   = 2
	defaultOffStep  = 0.5
	defaultOffCount = 20
	minOffsetAlpha  = 0.05
)

// Pixels covered by one terminal cell.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

const (
	doubleClickMillis = 400
	maxHistory        = 200
)
