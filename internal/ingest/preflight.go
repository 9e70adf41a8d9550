package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/camm-health/stayload/internal/normalize"
)

// MaxFileSize is the largest roster file accepted by the guard: 10 MiB.
const MaxFileSize = 10 << 20

var allowedExtensions = []string{".xlsx", ".xls", ".csv"}

// CheckFile is the advisory pre-flight guard: it judges a file by name and
// size alone, without touching its contents. Callers decide whether to
// proceed; the reader itself never runs this check.
func CheckFile(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	ok := false
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("unsupported file type %q: expected %s", ext, strings.Join(allowedExtensions, ", "))
	}
	if size > MaxFileSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", size, MaxFileSize)
	}
	return nil
}

// PreflightResult holds the context resolved before any row is read.
type PreflightResult struct {
	FilePath      string
	FileName      string
	FileSize      int64
	FileSHA256    string
	ImportBatchID uuid.UUID
}

// Preflight stats the file, runs the format guard, computes the SHA-256 and
// assigns a fresh batch ID for this run.
func Preflight(log zerolog.Logger, filePath string) (*PreflightResult, error) {
	start := time.Now()

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	if err := CheckFile(filepath.Base(filePath), stat.Size()); err != nil {
		return nil, fmt.Errorf("preflight guard: %w", err)
	}

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("size", stat.Size()).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return &PreflightResult{
		FilePath:      filePath,
		FileName:      filepath.Base(filePath),
		FileSize:      stat.Size(),
		FileSHA256:    sha,
		ImportBatchID: uuid.New(),
	}, nil
}
