package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = "VeoScriptBuilder"

const HistoryDBName = "history.db"

// EnsureAt creates the workspace layout under base and returns base.
func EnsureAt(base string) (string, error) {
	if err := os.MkdirAll(ExportsDir(base), 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", ExportsDir(base), err)
	}
	return base, nil
}

func ExportsDir(root string) string {
	return filepath.Join(root, "exports")
}

func HistoryDBPath(root string) string {
	return filepath.Join(root, HistoryDBName)
}
