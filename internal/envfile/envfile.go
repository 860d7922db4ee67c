// Package envfile loads the local dotenv snapshot.
package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the dotenv file at path and returns its key/value pairs.
// A missing file is an error: the snapshot is the desired end state, and
// syncing against a file that does not exist would remove everything.
func Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return vars, nil
}

// Write saves vars as a dotenv file at path, used by the pull path when the
// platform CLI cannot write the file itself. Keys are sorted on disk.
func Write(vars map[string]string, path string) error {
	if err := godotenv.Write(vars, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
