package iofs

import (
	"github.com/nmtkit/nmtkit/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	return errcode.Wrap(errcode.CreateDirError, err, "cannot create %s", dir)
}
