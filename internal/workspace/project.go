package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultExportPrefix = "veo3_senior_health_dr_mitchell"

var ErrEmptyExport = errors.New("nothing to export")

type Export struct {
	Name  string
	Path  string
	Bytes int64
}

// ExportFileName follows <prefix>_<2006-01-02T15-04-05>.txt in UTC.
func ExportFileName(prefix string, now time.Time) string {
	prefix = sanitizePrefix(prefix)
	stamp := now.UTC().Format("2006-01-02T15-04-05")
	return prefix + "_" + stamp + ".txt"
}

func SaveExport(root, prefix, commands string, now time.Time) (*Export, error) {
	if strings.TrimSpace(commands) == "" {
		return nil, ErrEmptyExport
	}

	dir := ExportsDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create exports dir: %w", err)
	}

	name, path, err := createExclusive(dir, ExportFileName(prefix, now), commands)
	if err != nil {
		return nil, err
	}

	return &Export{
		Name:  name,
		Path:  path,
		Bytes: int64(len(commands)),
	}, nil
}

// createExclusive never overwrites an earlier export: a taken name gets a
// -2, -3, ... suffix before the extension.
func createExclusive(dir, name, commands string) (string, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := name
		if n > 1 {
			candidate = fmt.Sprintf("%s-%d%s", stem, n, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("create export: %w", err)
		}
		if _, err := f.WriteString(commands); err != nil {
			f.Close()
			return "", "", fmt.Errorf("write export: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", "", fmt.Errorf("close export: %w", err)
		}
		return candidate, path, nil
	}
}

func sanitizePrefix(prefix string) string {
	base := filepath.Base(strings.TrimSpace(prefix))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return DefaultExportPrefix
	}
	if cleaned := strings.ReplaceAll(base, "..", ""); cleaned != "" {
		return cleaned
	}
	return DefaultExportPrefix
}
