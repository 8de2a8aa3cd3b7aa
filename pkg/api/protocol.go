package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Представляет собой полный "снимок" мира после обработки команды.
type ServerResponse struct {
	// Type тип сообщения: "INIT" для нового подключения, "UPDATE" для остальных.
	Type string `json:"type"`

	// Turn сколько раз прогонялся конвейер хода (включая первый, при загрузке).
	Turn int `json:"turn"`

	// Accepted ответ на последнюю команду. false, если шаг отклонен
	// (стена, вода, край карты или сущность на пути).
	Accepted bool `json:"accepted"`

	// Error причина, по которой команда не выполнена (битый payload и т.п.).
	Error string `json:"error,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех видимых и/или исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities срез сущностей на видимых клетках.
	Entities []EntityView `json:"entities,omitempty"`

	// Player позиция игрока.
	Player PositionView `json:"player"`

	// Camera состояние камеры.
	Camera CameraView `json:"camera"`

	// Draw готовый список инстансов для отрисовки, в порядке слоев.
	Draw []DrawInstance `json:"draw,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Terrain метка поверхности (ground, wall, water_edge...).
	Terrain string `json:"terrain"`

	// Rotation поворот спрайта в градусах.
	Rotation float32 `json:"rotation"`

	// IsWall true, если тайл непроходим.
	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден.
	// Если IsVisible=false, а IsExplored=true, рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для динамической сущности.
type EntityView struct {
	ID      uint32       `json:"id"`
	Image   string       `json:"image"`
	Pos     PositionView `json:"pos"`
	Counter int          `json:"counter"` // ходов до исчезновения
}

// PositionView - клетка на карте.
type PositionView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CameraView - состояние камеры.
type CameraView struct {
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	Zoom float32 `json:"zoom"`
}

// DrawInstance - один спрайт для GPU.
type DrawInstance struct {
	Center     [2]float32 `json:"center"`
	Dimensions [2]float32 `json:"dimensions"`
	Rotation   float32    `json:"rotation"` // радианы
	UV         [2]float32 `json:"uv"`
	Overlay    [4]float32 `json:"overlay"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: INIT, MOVE, WAIT, ZOOM, PAN.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE и PAN.
type DirectionPayload struct {
	Direction string `json:"direction"` // UP, DOWN_LEFT, STAND_STILL...
}

// ZoomPayload используется для ZOOM.
type ZoomPayload struct {
	In bool `json:"in"` // true - приблизить, false - отдалить
}
