package iologger

import (
	"github.com/nmtkit/nmtkit/pkg/errcode"
)

func CreateLogFileError(path string, err error) error {
	return errcode.Wrap(errcode.CreateLogFileError, err,
		"cannot create log file %s", path)
}
