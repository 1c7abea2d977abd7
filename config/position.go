package config

import (
	"fmt"
	"strconv"

	"github.com/yllada/redshift-tray/common"
)

// WindowPosition is where the popup window is placed on screen.
// It is stored as its ordinal.
type WindowPosition int

const (
	PositionCenter WindowPosition = iota
	PositionTopLeft
	PositionTopRight
	PositionBottomRight
	PositionBottomLeft
)

var positionNames = [...]string{
	PositionCenter:      "Center",
	PositionTopLeft:     "Top left",
	PositionTopRight:    "Top right",
	PositionBottomRight: "Bottom right",
	PositionBottomLeft:  "Bottom left",
}

// WindowPositions returns every position in ordinal order.
func WindowPositions() []WindowPosition {
	return []WindowPosition{
		PositionCenter,
		PositionTopLeft,
		PositionTopRight,
		PositionBottomRight,
		PositionBottomLeft,
	}
}

// Valid reports whether p is a known position.
func (p WindowPosition) Valid() bool {
	return p >= PositionCenter && p <= PositionBottomLeft
}

// String returns the label shown in the settings dialog.
func (p WindowPosition) String() string {
	if !p.Valid() {
		return fmt.Sprintf("WindowPosition(%d)", int(p))
	}
	return positionNames[p]
}

// ParseWindowPosition accepts an ordinal ("2") or a label, case and
// separator insensitive ("top-right", "Top right").
func ParseWindowPosition(s string) (WindowPosition, error) {
	if n, err := strconv.Atoi(s); err == nil {
		p := WindowPosition(n)
		if !p.Valid() {
			return 0, fmt.Errorf("%w: %d", common.ErrInvalidWindowPosition, n)
		}
		return p, nil
	}

	want := normalizeLabel(s)
	for _, p := range WindowPositions() {
		if normalizeLabel(p.String()) == want {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", common.ErrInvalidWindowPosition, s)
}

func normalizeLabel(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c >= 'a' && c <= 'z':
			out = append(out, c)
		}
	}
	return string(out)
}

// Anchor returns where the window sits within the usable screen area as
// horizontal and vertical fractions: 0 is left/top, 1 is right/bottom.
func (p WindowPosition) Anchor() (h, v float64) {
	switch p {
	case PositionTopLeft:
		return 0, 0
	case PositionTopRight:
		return 1, 0
	case PositionBottomRight:
		return 1, 1
	case PositionBottomLeft:
		return 0, 1
	default:
		return 0.5, 0.5
	}
}

// Origin returns the top-left corner of a w x h window placed at p inside
// the area starting at (ax, ay) with size aw x ah.
func (p WindowPosition) Origin(ax, ay, aw, ah, w, h int) (x, y int) {
	fh, fv := p.Anchor()
	return ax + int(fh*float64(aw-w)), ay + int(fv*float64(ah-h))
}
