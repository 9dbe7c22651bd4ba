package layers

import "testing"

func TestCreateCenteredLayer_Empty(t *testing.T) {
	if layer := CreateCenteredLayer("", 80, 24); layer != nil {
		t.Error("empty content should not produce a layer")
	}
}

func TestCreateCenteredLayer_NotNil(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		width, height int
	}{
		{"fits", "hello\nworld", 80, 24},
		{"larger than screen", "a very long line of content", 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if layer := CreateCenteredLayer(tt.content, tt.width, tt.height); layer == nil {
				t.Error("expected a layer")
			}
		})
	}
}

func TestCreateCenteredLayer_Position(t *testing.T) {
	layer := CreateCenteredLayer("hello\nworld", 80, 24)

	if layer.GetX() != 37 || layer.GetY() != 11 {
		t.Errorf("layer at (%d,%d), want (37,11)", layer.GetX(), layer.GetY())
	}

	clamped := CreateCenteredLayer("a very long line of content", 5, 1)
	if clamped.GetX() != 0 || clamped.GetY() != 0 {
		t.Errorf("oversized layer at (%d,%d), want (0,0)", clamped.GetX(), clamped.GetY())
	}
}
