package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// collectFiles moves this run's generated files into the dated output
// directory, mirroring the review archive layout (integration/MM-DD/...).
// Reruns overwrite whatever an earlier run left there.
func collectFiles(targetDir string, paths []string) error {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return err
	}

	for _, p := range paths {
		dest := filepath.Join(targetDir, filepath.Base(p))
		if err := os.Rename(p, dest); err != nil {
			return fmt.Errorf("moving %q into %q: %w", p, targetDir, err)
		}
	}
	return nil
}
