package file

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CreateOutputPath makes sure dir exists and returns a fresh, uniquely named
// path inside it with the given extension.
func CreateOutputPath(dir string, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", errors.Wrapf(err, "could not create output dir %s", dir)
	}
	return filepath.Join(dir, uuid.New().String()+ext), nil
}
