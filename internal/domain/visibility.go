package domain

// Visibility - состояние клетки в тумане войны.
type Visibility uint8

const (
	Invisible Visibility = iota
	Visible
	PreviouslyVisible
)

// Overlay - RGBA затемнения поверх тайла. Хранится не в сетке, а вычисляется при отрисовке.
func (v Visibility) Overlay() [4]float32 {
	switch v {
	case Invisible:
		return [4]float32{0, 0, 0, 1}
	case PreviouslyVisible:
		return [4]float32{0, 0, 0, 0.75}
	default:
		return [4]float32{}
	}
}

func (v Visibility) String() string {
	switch v {
	case Invisible:
		return "INVISIBLE"
	case Visible:
		return "VISIBLE"
	case PreviouslyVisible:
		return "PREVIOUSLY_VISIBLE"
	default:
		return "UNKNOWN"
	}
}

// Explored - клетку видели хотя бы раз.
func (v Visibility) Explored() bool {
	return v != Invisible
}
