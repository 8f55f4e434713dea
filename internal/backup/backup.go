package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"envedit/internal/config"
	"envedit/internal/logger"
)

// timeFormat is the suffix appended to backup copies.
const timeFormat = "20060102.15.04.05"

// File copies path to a timestamped backup in the configured backup folder
// and prunes stale backups of the same file. It returns the backup path, or
// "" when there was nothing to back up.
func File(ctx context.Context, path string, conf config.AppConfig) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug(ctx, "No file at '%s' to back up.", path)
		return "", nil
	}

	folder := conf.BackupDir
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", fmt.Errorf("backup: create folder %s: %w", folder, err)
	}

	base := filepath.Base(path)
	dst := filepath.Join(folder, fmt.Sprintf("%s.%s", base, time.Now().Format(timeFormat)))

	logger.Info(ctx, "Copying '%s' to '%s'", path, dst)
	if err := copyFile(path, dst); err != nil {
		return "", fmt.Errorf("backup: copy %s: %w", path, err)
	}

	Prune(ctx, folder, base, conf.Backup.RetentionDays)
	return dst, nil
}

// Prune removes backups of the named file older than retentionDays. A
// non-positive retention keeps everything.
func Prune(ctx context.Context, folder, base string, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return
	}

	threshold := time.Now().AddDate(0, 0, -retentionDays)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), base+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(threshold) {
			full := filepath.Join(folder, e.Name())
			logger.Debug(ctx, "Removing old backup '%s'", full)
			_ = os.Remove(full)
		}
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
