package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `SNRP` // 4 байта
	Version1    uint32 = 1
	FileExt     string = ".snrp"
)

// ReplayFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Timestamp   int64   // 8 байт
	MapChecksum uint32  // 4 байта
	ActionCount uint32  // 4 байта
}

// ActionRecord - одна попытка шага.
type ActionRecord struct {
	Turn      int32 // 4
	Direction uint8 // 1
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет сессию в новый файл и возвращает путь к нему.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d%s", session.Timestamp, FileExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := WriteBinary(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay_storage",
		"path":      path,
		"actions":   len(session.Actions),
	}).Info("Replay saved")

	return path, nil
}

// WriteBinary сериализует сессию: заголовок, затем записи действий подряд.
func WriteBinary(w io.Writer, s *domain.ReplaySession) error {
	header := ReplayFileHeader{
		Version:     Version1,
		Timestamp:   s.Timestamp,
		MapChecksum: s.MapChecksum,
		ActionCount: uint32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, act := range s.Actions {
		if !act.Direction.Valid() {
			return fmt.Errorf("action %d: invalid direction %d", i, act.Direction)
		}
		rec := ActionRecord{
			Turn:      int32(act.Turn),
			Direction: uint8(act.Direction),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write action %d: %w", i, err)
		}
	}

	return nil
}
