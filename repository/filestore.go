package repository

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// allowedExtensions mirrors the upload allow-list: images, PDF and Word
// documents, matched case-insensitively against the generated name.
var allowedExtensions = regexp.MustCompile(`(?i)\.(jpeg|jpg|png|gif|pdf|doc|docx)$`)

// FileStore keeps project uploads under <root>/ProjectImages/<projectID>/.
// Filenames are freshly generated UUIDs carrying the original extension so
// concurrent uploads cannot collide and client names never reach the disk.
type FileStore struct {
	root string
	log  *logrus.Logger
}

func NewFileStore(root string, log *logrus.Logger) *FileStore {
	if log == nil {
		log = logrus.New()
	}
	return &FileStore{root: root, log: log}
}

func (fs *FileStore) projectDir(projectID string) string {
	return filepath.Join(fs.root, "ProjectImages", projectID)
}

// Store writes every accepted upload into the project directory and returns
// the generated names plus the absolute paths written, so a failed database
// transaction can undo the writes. Files with a disallowed extension are
// skipped and logged, never stored.
func (fs *FileStore) Store(projectID string, files []*multipart.FileHeader) (names []string, written []string, err error) {
	dir := fs.projectDir(projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create project directory: %w", err)
	}

	for _, file := range files {
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if !allowedExtensions.MatchString(name) {
			fs.log.WithField("filename", file.Filename).Warn("Invalid file extension, skipping upload")
			continue
		}

		path := filepath.Join(dir, name)
		if err := saveUpload(file, path); err != nil {
			return names, written, fmt.Errorf("save upload %s: %w", file.Filename, err)
		}
		names = append(names, name)
		written = append(written, path)
	}

	return names, written, nil
}

// Clear removes every file currently in the project directory, creating the
// directory when it does not exist yet.
func (fs *FileStore) Clear(projectID string) error {
	dir := fs.projectDir(projectID)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the given paths, best effort. Used to undo writes after a
// rolled-back transaction so no orphaned files linger on disk.
func (fs *FileStore) Remove(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			fs.log.WithError(err).WithField("path", path).Warn("Failed to remove orphaned upload")
		}
	}
}

// RemoveAll deletes the whole project directory recursively.
func (fs *FileStore) RemoveAll(projectID string) error {
	return os.RemoveAll(fs.projectDir(projectID))
}

// Path resolves a stored file by project and name. The name must be a bare
// filename; anything carrying a path separator is rejected.
func (fs *FileStore) Path(projectID, name string) (string, bool) {
	if name != filepath.Base(name) || projectID != filepath.Base(projectID) ||
		name == "." || name == ".." || projectID == "." || projectID == ".." {
		return "", false
	}
	path := filepath.Join(fs.projectDir(projectID), name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

func saveUpload(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
