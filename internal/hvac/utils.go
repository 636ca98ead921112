package hvac

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// numberedName inserts counter n before the extension of fpath
// ("out.txt", 2 -> "out.2.txt"). n == 0 returns fpath unchanged.
func numberedName(fpath string, n uint) string {
	if n == 0 {
		return fpath
	}
	ext := filepath.Ext(fpath)
	return strings.TrimSuffix(fpath, ext) + "." + strconv.FormatUint(uint64(n), 10) + ext
}

// CreateFileWithoutOverwrite creates fpath, or the first free numbered
// variant of it (out.txt, out.1.txt, out.2.txt ...). It returns the
// name actually used.
func CreateFileWithoutOverwrite(fpath string) (*os.File, string, error) {
	for n := uint(0); ; n++ {
		name := numberedName(fpath, n)
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if os.IsExist(err) {
			continue
		}
		return f, name, err
	}
}
