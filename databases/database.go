package databases

// go generate: mockery --name DatabaseHelper

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/linesmerrill/cohort-site/config"
)

// DatabaseHelper contains the file operations the flat-file databases are built on.
// Names are relative to the data directory.
type DatabaseHelper interface {
	Path(name string) string
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	AppendCSV(name string, header []string, rows ...[]string) error
	ReadCSV(name string) ([][]string, error)
}

type fileDatabase struct {
	dir string
}

// NewDatabase uses the values from the config and returns a file backed DatabaseHelper
func NewDatabase(conf *config.Config) DatabaseHelper {
	return NewDirDatabase(conf.DataDir)
}

// NewDirDatabase returns a DatabaseHelper rooted at dir
func NewDirDatabase(dir string) DatabaseHelper {
	return &fileDatabase{dir: dir}
}

func (f *fileDatabase) Path(name string) string {
	return filepath.Join(f.dir, name)
}

func (f *fileDatabase) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(f.Path(name))
}

// WriteFile replaces the file through a temp file and rename, so readers never
// see a half written document.
func (f *fileDatabase) WriteFile(name string, data []byte) error {
	path := f.Path(name)
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// AppendCSV appends rows to the named file, writing header first when the file is new
// or empty. Header and rows go out in a single write.
func (f *fileDatabase) AppendCSV(name string, header []string, rows ...[]string) error {
	file, err := os.OpenFile(f.Path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	var b strings.Builder
	if info.Size() == 0 {
		b.WriteString(strings.Join(header, ","))
		b.WriteString("\n")
	}
	for _, row := range rows {
		b.WriteString(quoteRow(row))
	}

	if _, err := file.WriteString(b.String()); err != nil {
		return err
	}
	return file.Close()
}

// ReadCSV parses the named file, header included
func (f *fileDatabase) ReadCSV(name string) ([][]string, error) {
	file, err := os.Open(f.Path(name))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// quoteRow wraps every field in double quotes, doubling any embedded quote
func quoteRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, v := range fields {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\n"
}

// EnsureDir creates the data directory if it does not exist
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
