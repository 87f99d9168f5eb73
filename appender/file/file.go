// Package file implements an appender.Appender that writes rendered
// records to a rotating log file. It is grounded on handler/filehandler
// /file.go's fileBase: the size/age/interval rotation triggers, the
// rename-with-timestamp rotation, and the old-backup cleanup are kept
// nearly verbatim, since rotation policy has nothing to do with the
// queue/overflow machinery the teacher bundled alongside it — only that
// bundling is removed, not the rotation logic itself.
package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nilsbrandt/corelog/appender"
	"github.com/nilsbrandt/corelog/core"
	"github.com/nilsbrandt/corelog/renderer"
)

// Config configures a file Appender.
type Config struct {
	// Name identifies this appender to diagnostics and the events
	// Handler. Defaults to "file".
	Name string
	// Filename is the path to the log file. Required.
	Filename string
	// Renderer turns a record into text. Defaults to renderer.NewText("").
	Renderer appender.Renderer
	// Level is the minimum level this appender accepts.
	Level core.Level
	// MaxSize is the file size in bytes that triggers rotation. 0
	// disables size-based rotation.
	MaxSize int64
	// MaxAge is the file age that triggers rotation. 0 disables
	// age-based rotation.
	MaxAge time.Duration
	// MaxBackups is the number of rotated files to retain. 0 keeps all.
	MaxBackups int
	// RotateInterval triggers rotation on a fixed cadence regardless of
	// size or age. 0 disables interval-based rotation.
	RotateInterval time.Duration
}

func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = "file"
	}
	if cfg.Renderer == nil {
		cfg.Renderer = renderer.NewText("")
	}
}

// sizeTrackingWriter wraps an io.Writer and tracks total bytes written,
// lifted from filehandler's identically-named helper.
type sizeTrackingWriter struct {
	w       io.Writer
	written int64
}

func (s *sizeTrackingWriter) Write(p []byte) (n int, err error) {
	n, err = s.w.Write(p)
	s.written += int64(n)
	return
}

func (s *sizeTrackingWriter) reset(w io.Writer) {
	s.w = w
	s.written = 0
}

// File writes every record it receives to a rotating file. Setup opens
// the file (creating parent directories as needed); Write rotates first
// if a threshold has been crossed, then renders and writes; Teardown
// flushes, syncs and closes. Because this appender is driven by exactly
// one goroutine for its whole life, none of its state needs locking.
type File struct {
	appender.Base

	name           string
	filename       string
	render         appender.Renderer
	asWriter       appender.WriterRenderer
	maxSize        int64
	maxAge         time.Duration
	maxBackups     int
	rotateInterval time.Duration
	hasRotation    bool

	file           *os.File
	sizeWriter     *sizeTrackingWriter
	bufWriter      *bufio.Writer
	currentSize    int64
	lastRotateTime time.Time
}

// New creates a File appender from cfg. It does not open the file;
// Setup does that, matching every other Appender's lifecycle.
func New(cfg Config) *File {
	applyDefaults(&cfg)
	f := &File{
		name:           cfg.Name,
		filename:       cfg.Filename,
		render:         cfg.Renderer,
		maxSize:        cfg.MaxSize,
		maxAge:         cfg.MaxAge,
		maxBackups:     cfg.MaxBackups,
		rotateInterval: cfg.RotateInterval,
		hasRotation:    cfg.MaxSize > 0 || cfg.MaxAge > 0 || cfg.RotateInterval > 0,
	}
	f.asWriter, _ = cfg.Renderer.(appender.WriterRenderer)
	f.SetLevel(cfg.Level)
	return f
}

// Name implements appender.Appender.
func (f *File) Name() string { return f.name }

// Setup implements appender.Appender.
func (f *File) Setup() error {
	if f.filename == "" {
		return fmt.Errorf("%w: file appender requires a filename", core.ErrConfiguration)
	}
	if err := f.render.Setup(); err != nil {
		return err
	}

	dir := filepath.Dir(f.filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(f.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	f.file = file
	f.sizeWriter = &sizeTrackingWriter{w: file}
	f.bufWriter = bufio.NewWriterSize(f.sizeWriter, 4096)
	f.currentSize = info.Size()
	f.lastRotateTime = time.Now()
	return nil
}

// Write implements appender.Appender.
func (f *File) Write(record core.LogRecord) error {
	if err := f.rotateIfNeeded(); err != nil {
		return err
	}

	if f.asWriter != nil {
		prevFlushed := f.sizeWriter.written
		prevBuffered := f.bufWriter.Buffered()
		err := f.asWriter.RenderTo(record, f.bufWriter)
		if err == nil {
			written := (f.sizeWriter.written - prevFlushed) + int64(f.bufWriter.Buffered()-prevBuffered)
			f.currentSize += written
		}
		return err
	}

	out, err := f.render.Render(record)
	if err != nil {
		return err
	}
	n, err := f.bufWriter.WriteString(out)
	if err == nil {
		f.currentSize += int64(n)
	}
	return err
}

// TryRestart implements appender.Appender: it attempts to reopen the
// file, for when Write started failing because the file or its
// directory disappeared out from under the appender.
func (f *File) TryRestart() bool {
	if f.file != nil {
		f.bufWriter.Flush()
		f.file.Close()
	}
	return f.Setup() == nil
}

// Teardown implements appender.Appender.
func (f *File) Teardown() error {
	var err error
	if f.bufWriter != nil {
		err = f.bufWriter.Flush()
	}
	if f.file != nil {
		if syncErr := f.file.Sync(); err == nil {
			err = syncErr
		}
		if closeErr := f.file.Close(); err == nil {
			err = closeErr
		}
	}
	if renderErr := f.render.Teardown(); err == nil {
		err = renderErr
	}
	return err
}

func (f *File) rotateIfNeeded() error {
	if !f.hasRotation {
		return nil
	}

	needRotate := f.maxSize > 0 && f.currentSize >= f.maxSize
	if f.maxAge > 0 && time.Since(f.lastRotateTime) >= f.maxAge {
		needRotate = true
	}
	if f.rotateInterval > 0 && time.Since(f.lastRotateTime) >= f.rotateInterval {
		needRotate = true
	}
	if !needRotate {
		return nil
	}
	return f.rotate()
}

func (f *File) rotate() error {
	if err := f.bufWriter.Flush(); err != nil {
		return err
	}
	if err := f.file.Sync(); err != nil {
		return err
	}
	if err := f.file.Close(); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", f.filename, timestamp)

	if err := os.Rename(f.filename, rotatedName); err != nil {
		file, openErr := os.OpenFile(f.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		f.file = file
		return err
	}

	if f.maxBackups > 0 {
		f.cleanupOldBackups()
	}

	file, err := os.OpenFile(f.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	f.file = file
	f.sizeWriter.reset(file)
	f.bufWriter.Reset(f.sizeWriter)
	f.currentSize = 0
	f.lastRotateTime = time.Now()
	return nil
}

func (f *File) cleanupOldBackups() {
	dir := filepath.Dir(f.filename)
	base := filepath.Base(f.filename)

	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > f.maxBackups {
		for _, path := range backups[:len(backups)-f.maxBackups] {
			os.Remove(path)
		}
	}
}
