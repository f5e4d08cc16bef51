package lumalog

import (
	"os"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	apperrors "github.com/olusolaa/lumalog/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonRecord struct {
	Level     string  `json:"level"`
	Message   string  `json:"message"`
	Timestamp *string `json:"timestamp"`
}

// FileRenderer appends one line per record to a file. The file is opened on
// first use and kept open; a failed open or write drops the handle so the next
// record starts over.
type FileRenderer struct {
	path   string
	format FileFormat

	mu   sync.Mutex
	file *os.File
}

func NewFileRenderer(cfg FileSinkConfig) *FileRenderer {
	format := cfg.Format()
	if format == "" {
		format = FormatText
	}
	return &FileRenderer{path: cfg.Path(), format: format}
}

func (r *FileRenderer) Path() string {
	return r.path
}

func (r *FileRenderer) Render(rec Record) error {
	line, err := r.Encode(rec)
	if err != nil {
		return apperrors.WrapWithoutStack(err, apperrors.CodeSinkWriteError, "cannot encode log record").
			WithDetails("path=%s format=%s", r.path, r.format)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		// Parent directories are never created.
		f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return apperrors.WrapWithoutStack(err, apperrors.CodeSinkWriteError, "cannot open log file").
				WithDetails("path=%s", r.path)
		}
		r.file = f
	}

	if _, err := r.file.Write(line); err != nil {
		_ = r.file.Close()
		r.file = nil
		return apperrors.WrapWithoutStack(err, apperrors.CodeSinkWriteError, "cannot append to log file").
			WithDetails("path=%s", r.path)
	}
	return nil
}

// Encode renders rec in the configured format, newline included.
func (r *FileRenderer) Encode(rec Record) ([]byte, error) {
	if r.format == FormatJSON {
		return encodeJSON(rec)
	}
	return encodeText(rec), nil
}

func (r *FileRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func encodeText(rec Record) []byte {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(rec.Level.String())
	b.WriteString("] ")
	if rec.HasTime() {
		b.WriteString(rec.Timestamp())
		b.WriteByte(' ')
	}
	b.WriteString(rec.Message)
	b.WriteByte('\n')
	return []byte(b.String())
}

func encodeJSON(rec Record) ([]byte, error) {
	out := jsonRecord{Level: rec.Level.String(), Message: rec.Message}
	if rec.HasTime() {
		ts := rec.Timestamp()
		out.Timestamp = &ts
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
