package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yllada/redshift-tray/common"
)

func TestWindowPosition_String(t *testing.T) {
	assert.Equal(t, "Center", PositionCenter.String())
	assert.Equal(t, "Bottom left", PositionBottomLeft.String())
	assert.Equal(t, "WindowPosition(7)", WindowPosition(7).String())
}

func TestWindowPositions_Ordinals(t *testing.T) {
	for i, p := range WindowPositions() {
		assert.Equal(t, i, int(p))
		assert.True(t, p.Valid())
	}
	assert.False(t, WindowPosition(-1).Valid())
	assert.False(t, WindowPosition(5).Valid())
}

func TestParseWindowPosition(t *testing.T) {
	tests := []struct {
		in      string
		want    WindowPosition
		wantErr bool
	}{
		{"0", PositionCenter, false},
		{"3", PositionBottomRight, false},
		{"top-right", PositionTopRight, false},
		{"Top left", PositionTopLeft, false},
		{"BOTTOM_LEFT", PositionBottomLeft, false},
		{"center", PositionCenter, false},
		{"5", 0, true},
		{"middle", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWindowPosition(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, common.ErrInvalidWindowPosition), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowPosition_Anchor(t *testing.T) {
	tests := []struct {
		pos  WindowPosition
		h, v float64
	}{
		{PositionCenter, 0.5, 0.5},
		{PositionTopLeft, 0, 0},
		{PositionTopRight, 1, 0},
		{PositionBottomRight, 1, 1},
		{PositionBottomLeft, 0, 1},
		{WindowPosition(9), 0.5, 0.5},
	}

	for _, tt := range tests {
		h, v := tt.pos.Anchor()
		assert.Equal(t, tt.h, h, tt.pos.String())
		assert.Equal(t, tt.v, v, tt.pos.String())
	}
}

func TestWindowPosition_Origin(t *testing.T) {
	// 1920x1080 monitor with a 32px panel on top, 360x200 window.
	tests := []struct {
		pos  WindowPosition
		x, y int
	}{
		{PositionCenter, 780, 472},
		{PositionTopLeft, 0, 32},
		{PositionTopRight, 1560, 32},
		{PositionBottomRight, 1560, 880},
		{PositionBottomLeft, 0, 880},
	}

	for _, tt := range tests {
		x, y := tt.pos.Origin(0, 32, 1920, 1048, 360, 200)
		assert.Equal(t, tt.x, x, tt.pos.String())
		assert.Equal(t, tt.y, y, tt.pos.String())
	}
}
