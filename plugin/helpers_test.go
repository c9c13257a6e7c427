package plugin

import (
	"os"
	"path/filepath"
)

func writePage(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
}
