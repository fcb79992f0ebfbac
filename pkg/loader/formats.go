package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Extensions lists the accepted dictionary file extensions.
var Extensions = []string{".txt", ".dic", ".dict"}

// ValidateFile checks that path is a readable, non-empty dictionary file with
// a known extension.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat dictionary %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dictionary %s is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("dictionary %s is empty", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	validExt := false
	for _, e := range Extensions {
		if ext == e {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("dictionary %s has invalid extension %q (expected: %v)", path, ext, Extensions)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil {
		return fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	log.Debugf("Dictionary file %s validated (%d bytes)", path, info.Size())
	return nil
}
