package grid

import (
	"errors"
	"fmt"
	"iter"
)

// ErrSizeMismatch возвращается FromCells, если количество клеток не совпадает с размером.
var ErrSizeMismatch = errors.New("grid: cell count does not match dimensions")

// Grid - прямоугольная сетка фиксированного размера.
// Клетки хранятся построчно: индекс = y*width + x.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New строит сетку, вызывая fill для каждой координаты (построчно).
// Неинициализированных клеток не бывает.
func New[T any](width, height int, fill func(Coord) T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", width, height))
	}
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, 0, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells = append(g.cells, fill(Coord{X: x, Y: y}))
		}
	}
	return g
}

// FromCells оборачивает готовый построчный слайс в сетку.
// Слайс не копируется.
func FromCells[T any](width, height int, cells []T) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrSizeMismatch, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d cells, got %d", ErrSizeMismatch, width, height, width*height, len(cells))
	}
	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// MapWithCoord строит новую сетку того же размера из исходной.
// fn вызывается ровно один раз на клетку в порядке обхода All.
func MapWithCoord[S, T any](src *Grid[S], fn func(Coord, *S) T) *Grid[T] {
	dst := &Grid[T]{
		width:  src.width,
		height: src.height,
		cells:  make([]T, len(src.cells)),
	}
	for i := range src.cells {
		dst.cells[i] = fn(src.coordOf(i), &src.cells[i])
	}
	return dst
}

// Map - то же, что MapWithCoord, но без координаты.
func Map[S, T any](src *Grid[S], fn func(*S) T) *Grid[T] {
	return MapWithCoord(src, func(_ Coord, s *S) T { return fn(s) })
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// Len - общее число клеток.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Contains проверяет, лежит ли координата внутри сетки.
func (g *Grid[T]) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

func (g *Grid[T]) index(c Coord) int {
	return c.Y*g.width + c.X
}

func (g *Grid[T]) coordOf(i int) Coord {
	return Coord{X: i % g.width, Y: i / g.width}
}

// Get возвращает копию клетки. ok == false за границами.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	if !g.Contains(c) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(c)], true
}

// GetMut возвращает указатель на клетку или nil за границами.
func (g *Grid[T]) GetMut(c Coord) *T {
	if !g.Contains(c) {
		return nil
	}
	return &g.cells[g.index(c)]
}

// GetChecked для мест, где координата уже гарантированно внутри.
// Выход за границы - ошибка программиста, поэтому паника.
func (g *Grid[T]) GetChecked(c Coord) T {
	if !g.Contains(c) {
		panic(fmt.Sprintf("grid: coordinate %v out of bounds %dx%d", c, g.width, g.height))
	}
	return g.cells[g.index(c)]
}

// Set записывает значение. Возвращает false за границами.
func (g *Grid[T]) Set(c Coord, v T) bool {
	if !g.Contains(c) {
		return false
	}
	g.cells[g.index(c)] = v
	return true
}

// All перечисляет (координата, клетка) построчно. Можно менять клетку через указатель.
func (g *Grid[T]) All() iter.Seq2[Coord, *T] {
	return func(yield func(Coord, *T) bool) {
		for i := range g.cells {
			if !yield(g.coordOf(i), &g.cells[i]) {
				return
			}
		}
	}
}

// Values перечисляет клетки в том же порядке, что и All.
func (g *Grid[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}
