package logger

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("both sinks disabled is a configuration error", func(t *testing.T) {
		tmpDir := t.TempDir()

		_, err := New(Config{
			DisableConsole: true,
			DisableFile:    true,
			Directory:      tmpDir,
		})
		assert.ErrorIs(t, err, ErrNoSink)

		// No file may be created by a failed construction.
		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("invalid label fails construction", func(t *testing.T) {
		tmpDir := t.TempDir()

		_, err := New(Config{Label: "my-svc", Directory: tmpDir})
		assert.ErrorIs(t, err, ErrInvalidLabel)

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("label is validated even when file output is disabled", func(t *testing.T) {
		_, err := New(Config{Label: "my-svc", DisableFile: true})
		assert.ErrorIs(t, err, ErrInvalidLabel)
	})

	t.Run("missing directory fails construction", func(t *testing.T) {
		_, err := New(Config{Directory: filepath.Join(t.TempDir(), "nope")})
		assert.ErrorIs(t, err, ErrInvalidDirectory)
	})

	t.Run("negative max bytes fails construction", func(t *testing.T) {
		_, err := New(Config{Directory: t.TempDir(), MaxBytes: -1})
		assert.ErrorIs(t, err, ErrInvalidMaxBytes)
	})

	t.Run("file sink opens its first file eagerly", func(t *testing.T) {
		tmpDir := t.TempDir()

		log, err := New(Config{
			Label:          "svc",
			Directory:      tmpDir,
			DisableConsole: true,
		})
		require.NoError(t, err)
		defer log.Close()

		files, err := filepath.Glob(filepath.Join(tmpDir, "svc.log.*.csv"))
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("console-only logger needs no directory", func(t *testing.T) {
		log, err := New(Config{DisableFile: true})
		require.NoError(t, err)
		defer log.Close()

		assert.NoError(t, log.Info("Auth", "token refreshed"))
	})
}

func TestRotationScenario(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := New(Config{
		Label:          "svc",
		Directory:      tmpDir,
		Format:         FormatDelimited,
		MaxBytes:       100,
		DisableConsole: true,
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, log.Info("Auth", "ok"))
	}
	require.NoError(t, log.Close())

	first, err := filepath.Glob(filepath.Join(tmpDir, "svc.log.*.csv"))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(first), 2, "expected the 100-byte threshold to force a rotation")

	var unsuffixed, rotated int
	var total int
	for _, path := range first {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.LessOrEqual(t, info.Size(), int64(100))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		rows, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
		require.NoError(t, err)
		total += len(rows)

		if strings.Contains(filepath.Base(path), "_") {
			rotated++
		} else {
			unsuffixed++
		}
	}

	assert.Equal(t, 5, total, "every record must survive rotation")
	assert.Equal(t, 1, unsuffixed, "exactly one first file without a rotation suffix")
	assert.GreaterOrEqual(t, rotated, 1)
}

func TestLineObjectScenario(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := New(Config{
		Format:         FormatLineObject,
		Directory:      tmpDir,
		DisableConsole: true,
	})
	require.NoError(t, err)

	require.NoError(t, log.Error("Auth", "token expired"))
	require.NoError(t, log.Close())

	files, err := filepath.Glob(filepath.Join(tmpDir, "log.*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	var obj map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &obj))
	assert.Equal(t, "ERROR", obj["level"])
	assert.Equal(t, "Auth", obj["subject"])
	assert.Equal(t, "token expired", obj["message"])
	assert.NotEmpty(t, obj["time"])
}

func TestLevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := New(Config{
		Format:         FormatLineObject,
		Directory:      tmpDir,
		DisableConsole: true,
		Level:          LevelWarn,
	})
	require.NoError(t, err)

	require.NoError(t, log.Debug("Auth", "ignored"))
	require.NoError(t, log.Info("Auth", "ignored"))
	require.NoError(t, log.Warn("Auth", "kept"))
	require.NoError(t, log.Error("Auth", "kept"))
	require.NoError(t, log.Close())

	files, err := filepath.Glob(filepath.Join(tmpDir, "log.*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
	assert.NotContains(t, string(content), "ignored")
}

func TestRedaction(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := New(Config{
		Format:         FormatLineObject,
		Directory:      tmpDir,
		DisableConsole: true,
		Redaction:      true,
	})
	require.NoError(t, err)

	secret := "sk-abcdefghijklmnopqrstuvwxyz123456"
	require.NoError(t, log.Info("Auth", "issued key "+secret))
	require.NoError(t, log.Close())

	files, err := filepath.Glob(filepath.Join(tmpDir, "log.*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.NotContains(t, string(content), secret)
	assert.Contains(t, string(content), "[REDACTED]")
}

func TestConcurrentLogging(t *testing.T) {
	tmpDir := t.TempDir()

	log, err := New(Config{
		Format:         FormatLineObject,
		Directory:      tmpDir,
		DisableConsole: true,
		MaxBytes:       500,
	})
	require.NoError(t, err)

	const goroutines = 4
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				assert.NoError(t, log.Info("Worker", "processing item"))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, log.Close())

	files, err := filepath.Glob(filepath.Join(tmpDir, "log.*.txt"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	// Every record survives intact: no interleaved or torn lines, no file
	// over the threshold.
	var total int
	for _, path := range files {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.LessOrEqual(t, info.Size(), int64(500))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
			var obj map[string]string
			require.NoError(t, json.Unmarshal([]byte(line), &obj), "torn record: %q", line)
			total++
		}
	}
	assert.Equal(t, goroutines*perGoroutine, total)
}

func TestLoggerClose(t *testing.T) {
	t.Run("close is idempotent", func(t *testing.T) {
		log, err := New(Config{Directory: t.TempDir(), DisableConsole: true})
		require.NoError(t, err)

		assert.NoError(t, log.Close())
		assert.NoError(t, log.Close())
	})

	t.Run("logging after close surfaces the failure", func(t *testing.T) {
		log, err := New(Config{Directory: t.TempDir(), DisableConsole: true})
		require.NoError(t, err)
		require.NoError(t, log.Close())

		assert.ErrorIs(t, log.Info("Auth", "late"), ErrClosed)
	})
}
