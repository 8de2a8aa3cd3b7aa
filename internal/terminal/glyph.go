package terminal

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/nsf/termbox-go"
)

// Color - цвет ячейки терминала
type Color = termbox.Attribute

const (
	ColorDefault  Color = termbox.ColorDefault
	ColorDarkGray       = termbox.ColorDarkGray
	ColorWhite          = termbox.ColorWhite
	ColorBlue           = termbox.ColorBlue
	ColorCyan           = termbox.ColorCyan
	ColorGreen          = termbox.ColorGreen
	ColorYellow         = termbox.ColorYellow
	ColorMagenta        = termbox.ColorMagenta
	ColorWall           = termbox.ColorBlack | termbox.AttrBold
	ColorWallBg         = termbox.ColorDarkGray
	ColorText           = termbox.ColorLightGray
)

// Glyph - то, как клетка выглядит в терминале
type Glyph struct {
	Ch rune
	Fg Color
	Bg Color
}

var (
	GlyphEmpty  = Glyph{' ', ColorDefault, ColorDefault}
	GlyphPlayer = Glyph{'@', ColorYellow | termbox.AttrBold, ColorDefault}
	GlyphEgg    = Glyph{'o', ColorMagenta | termbox.AttrBold, ColorDefault}
)

var terrainGlyphs = map[domain.TerrainTag]Glyph{
	domain.TerrainGround:           {'.', ColorGreen, ColorDefault},
	domain.TerrainSnowyGround:      {'·', ColorWhite, ColorDefault},
	domain.TerrainRocks:            {'♠', ColorDarkGray, ColorDefault},
	domain.TerrainCaveEntrance:     {'∩', ColorYellow, ColorDefault},
	domain.TerrainCave:             {',', ColorDarkGray, ColorDefault},
	domain.TerrainCaveWall:         {'▓', ColorWall, ColorWallBg},
	domain.TerrainGoop:             {'%', ColorMagenta, ColorDefault},
	domain.TerrainWater:            {'≈', ColorBlue, ColorDefault},
	domain.TerrainWaterEdge:        {'~', ColorCyan, ColorDefault},
	domain.TerrainWaterCorner:      {'~', ColorCyan, ColorDefault},
	domain.TerrainWaterInnerCorner: {'~', ColorCyan, ColorDefault},
}

// TerrainGlyph возвращает символ поверхности с учетом видимости.
// Исследованные, но невидимые клетки рисуются тускло.
func TerrainGlyph(tag domain.TerrainTag, vis domain.Visibility) Glyph {
	if vis == domain.Invisible {
		return GlyphEmpty
	}
	g, ok := terrainGlyphs[tag]
	if !ok {
		g = Glyph{'?', ColorText, ColorDefault}
	}
	if vis == domain.PreviouslyVisible {
		g.Fg = ColorDarkGray
		g.Bg = ColorDefault
	}
	return g
}

// EntityGlyph - символ динамической сущности по ее картинке
func EntityGlyph(img domain.Image) Glyph {
	if img == domain.ImageEgg {
		return GlyphEgg
	}
	return Glyph{'*', ColorText, ColorDefault}
}
