// Package archive сохраняет собранные выпуски в JSON-файлы по исторической дате.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/maine/historical_times/internal/press"
)

// FileStore хранит выпуски в каталоге, по файлу на историческую дату.
type FileStore struct {
	dir string
}

// NewFileStore создаёт файловый архив выпусков.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(date time.Time) string {
	return filepath.Join(s.dir, date.Format("2006-01-02")+".json")
}

// Load читает выпуск за указанную историческую дату. Отсутствие файла — не
// ошибка: второй результат false. Повреждённый файл откладывается в .broken
// для диагностики и считается отсутствующим.
func (s *FileStore) Load(ctx context.Context, date time.Time) (press.Edition, bool, error) {
	data, err := os.ReadFile(s.path(date))
	if err != nil {
		if os.IsNotExist(err) {
			return press.Edition{}, false, nil
		}
		return press.Edition{}, false, fmt.Errorf("read edition file: %w", err)
	}

	var edition press.Edition
	if err := json.Unmarshal(data, &edition); err != nil {
		brokenPath := s.path(date) + ".broken"
		_ = os.WriteFile(brokenPath, data, 0644)
		return press.Edition{}, false, nil
	}

	return edition, true, nil
}

// Save записывает выпуск атомарно (через временный файл и переименование).
func (s *FileStore) Save(ctx context.Context, edition press.Edition) error {
	data, err := json.MarshalIndent(edition, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal edition: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}

	path := s.path(edition.HistoricalDate)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp edition file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp edition file: %w", err)
	}

	return nil
}
