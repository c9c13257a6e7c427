package filesystem

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// InstallEmbedFS copies the embedded directory embedDirectory to root.
func InstallEmbedFS(fs embed.FS, embedDirectory string, root string) error {
	return installEmbedFSDirectory(fs, embedDirectory, root)
}

func installEmbedFSDirectory(fs embed.FS, embedDirectory string, targetDirectory string) error {
	if err := CreateDirectoryIfNotExists(targetDirectory); err != nil {
		return fmt.Errorf("creating root directory '%s' failed: %w", targetDirectory, err)
	}

	entries, err := fs.ReadDir(embedDirectory)
	if err != nil {
		return fmt.Errorf("could not read embedded FS: %w", err)
	}

	for _, entry := range entries {
		// Embedded paths always use forward slashes.
		embedPath := path.Join(embedDirectory, entry.Name())
		targetPath := filepath.Join(targetDirectory, entry.Name())

		if entry.IsDir() {
			if err = installEmbedFSDirectory(fs, embedPath, targetPath); err != nil {
				return fmt.Errorf("could not install subdirectory: %w", err)
			}

			continue
		}

		log.Debug().Str("file", embedPath).Msg("installing")

		content, err := fs.ReadFile(embedPath)
		if err != nil {
			return fmt.Errorf("could not read embedded file '%s': %w", embedPath, err)
		}

		if err := os.WriteFile(targetPath, content, 0666); err != nil {
			return fmt.Errorf("could not write file '%s': %w", targetPath, err)
		}
	}

	return nil
}
