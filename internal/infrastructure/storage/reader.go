package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/expenses/snowy/internal/domain"
)

var ErrInvalidReplay = errors.New("invalid replay file")

// maxActions - верхняя граница счетчика из заголовка
const maxActions = 1 << 24

// initialActionsCap - память под действия растет по мере чтения записей,
// а не по числу из заголовка
const initialActionsCap = 1024

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadBinary(bufio.NewReader(f))
}

func ReadBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrInvalidReplay, err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidReplay, header.Magic[:])
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalidReplay, header.Version, Version1)
	}
	if header.ActionCount > maxActions {
		return nil, fmt.Errorf("%w: too many actions: %d", ErrInvalidReplay, header.ActionCount)
	}

	session := &domain.ReplaySession{
		Timestamp:   header.Timestamp,
		MapChecksum: header.MapChecksum,
		Actions:     make([]domain.ReplayAction, 0, min(int(header.ActionCount), initialActionsCap)),
	}

	// 2. Читаем действия
	for i := 0; i < int(header.ActionCount); i++ {
		var rec ActionRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: action %d: %v", ErrInvalidReplay, i, err)
		}
		dir := domain.Direction(rec.Direction)
		if !dir.Valid() {
			return nil, fmt.Errorf("%w: action %d: bad direction %d", ErrInvalidReplay, i, rec.Direction)
		}
		session.Actions = append(session.Actions, domain.ReplayAction{Turn: int(rec.Turn), Direction: dir})
	}

	return session, nil
}
