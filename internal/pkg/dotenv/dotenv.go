package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// .env.local раньше .env: godotenv не перетирает уже заданные переменные
var defaultFiles = []string{".env.local", ".env"}

// Load читает существующие файлы окружения и возвращает прочитанные.
// Переменные процесса важнее файлов. Отсутствие файлов не ошибка.
func Load(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = defaultFiles
	}

	loaded := make([]string, 0, len(files))
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return loaded, fmt.Errorf("load %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}

// Override выставляет переменные из непустых значений флагов командной строки.
func Override(values map[string]string) error {
	for key, value := range values {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
