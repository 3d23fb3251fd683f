package env

import (
	"os"
)

// IsDev reports whether FOLIO_DEV=1 is set. Dev mode shows render errors in
// served pages and enables the content watcher.
func IsDev() bool {
	return os.Getenv("FOLIO_DEV") == "1"
}
