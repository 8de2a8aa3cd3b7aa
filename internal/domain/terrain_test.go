package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/expenses/snowy/internal/grid"
)

func TestTerrainTag_Properties(t *testing.T) {
	tests := []struct {
		tag           TerrainTag
		blocksSight   bool
		blocksMove    bool
		expectedImage Image
	}{
		{TerrainGround, false, false, ImageGround},
		{TerrainRocks, false, true, ImageRocks},
		{TerrainCaveEntrance, false, false, ImageCaveEntrance},
		{TerrainCave, false, false, ImageCave},
		{TerrainCaveWall, true, true, ImageCaveWall},
		{TerrainGoop, false, false, ImageGoop},
		{TerrainSnowyGround, false, false, ImageSnowyGround},
		{TerrainWaterCorner, false, true, ImageWaterCorner},
		{TerrainWaterEdge, false, true, ImageWaterEdge},
		{TerrainWater, false, true, ImageWater},
		{TerrainWaterInnerCorner, false, true, ImageWaterInnerCorner},
	}

	for _, tt := range tests {
		if got := tt.tag.BlocksSight(); got != tt.blocksSight {
			t.Errorf("%v.BlocksSight() = %v, want %v", tt.tag, got, tt.blocksSight)
		}
		if got := tt.tag.BlocksMovement(); got != tt.blocksMove {
			t.Errorf("%v.BlocksMovement() = %v, want %v", tt.tag, got, tt.blocksMove)
		}
		if got := tt.tag.Image(); got != tt.expectedImage {
			t.Errorf("%v.Image() = %v, want %v", tt.tag, got, tt.expectedImage)
		}
	}
}

func TestParseTerrainLabel(t *testing.T) {
	tests := []struct {
		input string
		tag   TerrainTag
		ok    bool
	}{
		{"ground", TerrainGround, true},
		{"cave_enterance", TerrainCaveEntrance, true},
		{"water_inner_corner", TerrainWaterInnerCorner, true},
		{"Ground", 0, false},
		{"egg", 0, false},
		{"lava", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		tag, ok := ParseTerrainLabel(tt.input)
		if ok != tt.ok || (ok && tag != tt.tag) {
			t.Errorf("ParseTerrainLabel(%q) = (%v, %v), want (%v, %v)", tt.input, tag, ok, tt.tag, tt.ok)
		}
	}
}

func TestImage_AtlasCoordsUnique(t *testing.T) {
	seen := make(map[[2]uint32]Image)
	for img := ImageGround; img <= ImagePerson; img++ {
		x, y := img.AtlasCoords()
		if x >= AtlasSize || y >= AtlasSize {
			t.Errorf("%v atlas coords (%d,%d) outside %dx%d atlas", img, x, y, AtlasSize, AtlasSize)
		}
		key := [2]uint32{x, y}
		if other, dup := seen[key]; dup {
			t.Errorf("%v and %v share atlas cell %v", img, other, key)
		}
		seen[key] = img
	}
}

func TestRotation_JSON(t *testing.T) {
	var label TileLabel
	if err := json.Unmarshal([]byte(`{"label":"water_edge","rotation":"Plus90","subsection":[1,2]}`), &label); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label.Rotation != RotationPlus90 || label.Rotation.Degrees() != 90 {
		t.Errorf("rotation = %v (%v deg)", label.Rotation, label.Rotation.Degrees())
	}
	if label.Subsection != [2]uint32{1, 2} {
		t.Errorf("subsection = %v", label.Subsection)
	}

	var defaults TileLabel
	if err := json.Unmarshal([]byte(`{"label":"ground"}`), &defaults); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if defaults.Rotation != RotationNormal || defaults.Subsection != [2]uint32{} {
		t.Errorf("defaults not applied: %+v", defaults)
	}

	err := json.Unmarshal([]byte(`{"label":"ground","rotation":"Sideways"}`), &defaults)
	if !errors.Is(err, ErrMalformedMap) {
		t.Errorf("expected ErrMalformedMap, got %v", err)
	}
}

func TestRotation_Degrees(t *testing.T) {
	tests := map[Rotation]float32{
		RotationNormal:   0,
		RotationPlus90:   90,
		RotationOpposite: 180,
		RotationMinus90:  270,
	}
	for r, want := range tests {
		if got := r.Degrees(); got != want {
			t.Errorf("%v.Degrees() = %v, want %v", r, got, want)
		}
	}
}

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		input string
		dir   Direction
		delta grid.Coord
	}{
		{"up", Up, grid.Coord{X: 0, Y: -1}},
		{"DOWN", Down, grid.Coord{X: 0, Y: 1}},
		{"left", Left, grid.Coord{X: -1, Y: 0}},
		{"right", Right, grid.Coord{X: 1, Y: 0}},
		{"up_left", UpLeft, grid.Coord{X: -1, Y: -1}},
		{"UP_RIGHT", UpRight, grid.Coord{X: 1, Y: -1}},
		{"down_left", DownLeft, grid.Coord{X: -1, Y: 1}},
		{"down_right", DownRight, grid.Coord{X: 1, Y: 1}},
		{"stand_still", StandStill, grid.Coord{}},
	}

	for _, tt := range tests {
		dir := ParseDirection(tt.input)
		if dir != tt.dir {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, dir, tt.dir)
		}
		if !dir.Valid() {
			t.Errorf("%v should be valid", dir)
		}
		if got := dir.Delta(); got != tt.delta {
			t.Errorf("%v.Delta() = %v, want %v", dir, got, tt.delta)
		}
	}

	if ParseDirection("north") != DirectionUnknown || DirectionUnknown.Valid() {
		t.Error("unknown direction must not be valid")
	}
}

func TestVisibility_Overlay(t *testing.T) {
	if got := Invisible.Overlay(); got != [4]float32{0, 0, 0, 1} {
		t.Errorf("Invisible overlay = %v", got)
	}
	if got := PreviouslyVisible.Overlay(); got != [4]float32{0, 0, 0, 0.75} {
		t.Errorf("PreviouslyVisible overlay = %v", got)
	}
	if got := Visible.Overlay(); got != [4]float32{} {
		t.Errorf("Visible overlay = %v", got)
	}
}

func TestDynamicEntity_Tick(t *testing.T) {
	egg := NewEgg(1, grid.Coord{X: 3, Y: 4})
	if !egg.BlocksMovement || egg.Counter != 255 || egg.Image != ImageEgg {
		t.Fatalf("unexpected egg: %+v", egg)
	}
	if !egg.Occupies(grid.Coord{X: 3, Y: 4}) || egg.Occupies(grid.Coord{X: 4, Y: 3}) {
		t.Error("Occupies should match exact coordinate only")
	}

	for i := 1; i < 255; i++ {
		if egg.Tick() {
			t.Fatalf("egg expired early at tick %d", i)
		}
	}
	if !egg.Tick() {
		t.Error("egg should expire on tick 255")
	}
}

func TestCamera(t *testing.T) {
	cam := NewCamera(DefaultCameraZoom)
	cam.Pan(Right)
	if cam.Position.X != CameraPanSpeed/DefaultCameraZoom || cam.Position.Y != 0 {
		t.Errorf("pan right moved camera to %+v", cam.Position)
	}

	cam.ZoomIn()
	if cam.Zoom <= DefaultCameraZoom {
		t.Errorf("ZoomIn did not increase zoom: %v", cam.Zoom)
	}
	cam.ZoomOut()
	cam.ZoomOut()
	if cam.Zoom >= DefaultCameraZoom {
		t.Errorf("ZoomOut did not decrease zoom: %v", cam.Zoom)
	}
}
