package engine

import (
	"errors"
	"testing"

	"github.com/expenses/snowy/assets"
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
)

func TestDecodeMap(t *testing.T) {
	data := []byte(`{"size":{"width":2,"height":1},"cells":[
		{"label":"ground"},
		{"label":"water_edge","rotation":"Plus90","subsection":[0,0]}
	]}`)

	labels, err := DecodeMap(data)
	if err != nil {
		t.Fatalf("DecodeMap: %v", err)
	}
	if labels.Width() != 2 || labels.Height() != 1 {
		t.Fatalf("size = %dx%d", labels.Width(), labels.Height())
	}
	second := labels.GetChecked(grid.Coord{X: 1, Y: 0})
	if second.Label != domain.LabelWaterEdge || second.Rotation != domain.RotationPlus90 {
		t.Errorf("second cell = %+v", second)
	}
}

func TestDecodeMap_Malformed(t *testing.T) {
	tests := map[string]string{
		"not json":       `{`,
		"unknown field":  `{"size":{"width":1,"height":1},"cells":[{"label":"ground"}],"extra":1}`,
		"cell count":     `{"size":{"width":2,"height":2},"cells":[{"label":"ground"}]}`,
		"zero size":      `{"size":{"width":0,"height":0},"cells":[]}`,
		"bad rotation":   `{"size":{"width":1,"height":1},"cells":[{"label":"ground","rotation":"Sideways"}]}`,
		"negative width": `{"size":{"width":-1,"height":1},"cells":[]}`,
		"trailing junk":  `{"size":{"width":1,"height":1},"cells":[{"label":"ground"}]} !!!`,
		"second object":  `{"size":{"width":1,"height":1},"cells":[{"label":"ground"}]}{"junk":1}`,
		"stray brace":    `{"size":{"width":1,"height":1},"cells":[{"label":"ground"}]}}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeMap([]byte(data))
			if !errors.Is(err, domain.ErrMalformedMap) {
				t.Errorf("expected ErrMalformedMap, got %v", err)
			}
		})
	}
}

func TestDecodeMap_TrailingWhitespace(t *testing.T) {
	data := []byte("{\"size\":{\"width\":1,\"height\":1},\"cells\":[{\"label\":\"ground\"}]}\n\n")
	if _, err := DecodeMap(data); err != nil {
		t.Errorf("trailing newline should be accepted, got %v", err)
	}
}

func TestLoadWorld(t *testing.T) {
	labels, err := DecodeMap(buildMapJSON(t,
		".#e",
		"~ge",
	))
	if err != nil {
		t.Fatal(err)
	}

	tiles, entities, err := LoadWorld(labels)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}

	wantTags := map[grid.Coord]domain.TerrainTag{
		{X: 0, Y: 0}: domain.TerrainGround,
		{X: 1, Y: 0}: domain.TerrainCaveWall,
		{X: 2, Y: 0}: domain.TerrainGoop, // яйцо лежит на слизи
		{X: 0, Y: 1}: domain.TerrainWater,
		{X: 1, Y: 1}: domain.TerrainGoop,
		{X: 2, Y: 1}: domain.TerrainGoop,
	}
	for c, want := range wantTags {
		if got := tiles.GetChecked(c).Tag; got != want {
			t.Errorf("tile %v = %v, want %v", c, got, want)
		}
	}

	if len(entities) != 2 {
		t.Fatalf("expected 2 eggs, got %d", len(entities))
	}
	// Яйца регистрируются в построчном порядке, ID уникальны
	if entities[0].Pos != (grid.Coord{X: 2, Y: 0}) || entities[1].Pos != (grid.Coord{X: 2, Y: 1}) {
		t.Errorf("egg positions = %v, %v", entities[0].Pos, entities[1].Pos)
	}
	if entities[0].ID == entities[1].ID {
		t.Error("egg IDs must be unique")
	}
	for _, e := range entities {
		if e.Counter != domain.EggLifetime || !e.BlocksMovement || e.Image != domain.ImageEgg {
			t.Errorf("egg %+v is not a fresh egg", e)
		}
	}
}

func TestLoadWorld_UnknownLabel(t *testing.T) {
	labels, err := grid.FromCells(2, 1, []domain.TileLabel{{Label: "ground"}, {Label: "Ground"}})
	if err != nil {
		t.Fatal(err)
	}

	tiles, entities, err := LoadWorld(labels)
	if !errors.Is(err, domain.ErrUnknownTerrain) {
		t.Fatalf("expected ErrUnknownTerrain, got %v", err)
	}
	if tiles != nil || entities != nil {
		t.Error("failed load must not return a partial world")
	}
}

func TestMapChecksum(t *testing.T) {
	a := buildMapJSON(t, "..")
	b := buildMapJSON(t, ".#")
	if MapChecksum(a) == MapChecksum(b) {
		t.Error("different maps should have different checksums")
	}
	if MapChecksum(a) != MapChecksum(append([]byte(nil), a...)) {
		t.Error("checksum must be stable")
	}
}

func TestBoot_EmbeddedWorld(t *testing.T) {
	sim, err := Boot(NewConfig(), assets.WorldMap)
	if err != nil {
		t.Fatalf("embedded map must load: %v", err)
	}
	if sim.EntityCount() == 0 {
		t.Error("embedded map should contain eggs")
	}
	if tile := sim.Tiles().GetChecked(sim.PlayerPos()); tile.Tag.BlocksMovement() {
		t.Errorf("player starts on impassable %v", tile.Tag)
	}
}
