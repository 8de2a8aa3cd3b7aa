package domain

import "fmt"

// Rotation - поворот спрайта тайла. Нулевое значение - без поворота.
type Rotation uint8

const (
	RotationNormal Rotation = iota
	RotationMinus90
	RotationPlus90
	RotationOpposite
)

var rotationNames = map[Rotation]string{
	RotationNormal:   "Normal",
	RotationMinus90:  "Minus90",
	RotationPlus90:   "Plus90",
	RotationOpposite: "Opposite",
}

var rotationByName = map[string]Rotation{
	"Normal":   RotationNormal,
	"Minus90":  RotationMinus90,
	"Plus90":   RotationPlus90,
	"Opposite": RotationOpposite,
}

// Degrees возвращает угол поворота по часовой стрелке.
func (r Rotation) Degrees() float32 {
	switch r {
	case RotationPlus90:
		return 90
	case RotationOpposite:
		return 180
	case RotationMinus90:
		return 270
	default:
		return 0
	}
}

func (r Rotation) String() string {
	if name, ok := rotationNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText - в файле карты поворот хранится строкой.
func (r Rotation) MarshalText() ([]byte, error) {
	name, ok := rotationNames[r]
	if !ok {
		return nil, fmt.Errorf("unknown rotation %d", r)
	}
	return []byte(name), nil
}

func (r *Rotation) UnmarshalText(text []byte) error {
	val, ok := rotationByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: unknown rotation %q", ErrMalformedMap, text)
	}
	*r = val
	return nil
}
