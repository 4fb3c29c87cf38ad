package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/m04kA/KDR-BookingService/internal/usecase/export_backup"
)

// filenameFormat формат имени файла выгрузки: backup_YYYYMMDD_HHMMSS.json
const filenameFormat = "20060102_150405"

// FileSink записывает снапшоты в JSON-файлы локального каталога
type FileSink struct {
	dir string
}

// NewFileSink создает новый приемник снапшотов в каталоге dir
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Write сериализует снапшот и сохраняет его в файл
// backup_YYYYMMDD_HHMMSS.json, создавая каталог при необходимости.
// Возвращает имя файла без каталога.
func (s *FileSink) Write(_ context.Context, snapshot *export_backup.Snapshot) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("backup.filesink: failed to create directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("backup.filesink: failed to marshal snapshot: %w", err)
	}

	filename := fmt.Sprintf("backup_%s.json", time.Now().Format(filenameFormat))
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("backup.filesink: failed to write %s: %w", path, err)
	}

	return filename, nil
}
