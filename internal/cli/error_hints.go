package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vburojevic/errlens/internal/logfile"
)

func hintForPeriod() string {
	return "Pass one of today, week or month, e.g. `errlens week`"
}

func hintForLogSource(err error, path string) string {
	if err == nil {
		return ""
	}

	var nf *logfile.NotFoundError
	if errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("%s exists but could not be read: %v", path, nf.Err)
	}
	return fmt.Sprintf("Looked for %s; pass --file or set LOG_DIR", path)
}
