package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vk/tdbload/internal/model"
)

// PrepareLocation makes sure dir exists as a directory, creating it and any
// missing parents. With requireEmpty set, an existing directory must not
// contain any entries; the Data phase builds a database from scratch and
// refuses to mix with an earlier one.
//
// Every failure is a *model.ConfigurationError.
func PrepareLocation(dir string, requireEmpty bool) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &model.ConfigurationError{Message: fmt.Sprintf("Cannot create location %s", dir), Err: err}
		}
		return nil
	case err != nil:
		return &model.ConfigurationError{Message: fmt.Sprintf("Cannot access location %s", dir), Err: err}
	case !info.IsDir():
		return &model.ConfigurationError{Message: fmt.Sprintf("Location %s is not a directory", dir)}
	}

	if !requireEmpty {
		return nil
	}
	empty, err := isEmptyDir(dir)
	if err != nil {
		return &model.ConfigurationError{Message: fmt.Sprintf("Cannot read location %s", dir), Err: err}
	}
	if !empty {
		return &model.ConfigurationError{Message: fmt.Sprintf("Location %s is not empty", dir)}
	}
	return nil
}

func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
