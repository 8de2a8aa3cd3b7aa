package domain

// ReplayAction - одна попытка хода игрока (успешная или нет)
type ReplayAction struct {
	Turn      int       `json:"turn"`      // номер хода на момент попытки
	Direction Direction `json:"direction"` // куда шли
}

// ReplaySession - полная запись партии
type ReplaySession struct {
	Timestamp   int64          `json:"timestamp"`
	MapChecksum uint32         `json:"mapChecksum"` // CRC32 карты, на которой играли
	Actions     []ReplayAction `json:"actions"`
}

// Record добавляет попытку в ленту
func (r *ReplaySession) Record(turn int, dir Direction) {
	r.Actions = append(r.Actions, ReplayAction{Turn: turn, Direction: dir})
}
