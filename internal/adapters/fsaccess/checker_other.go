//go:build !unix

package fsaccess

import (
	"errors"
	"os"
)

func checkWritable(_ string, info os.FileInfo) error {
	if info.Mode().Perm()&0o200 == 0 {
		return errors.New("read-only file")
	}
	return nil
}
