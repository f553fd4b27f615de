package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	errHomeMissing = errors.New("path does not exist")
	errHomeNotDir  = errors.New("is not a directory")
)

func checkHome(home string) error {
	fi, err := os.Stat(home)
	if err != nil {
		return fmt.Errorf("%s %w: %s", homeEnv, errHomeMissing, home)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s %w: %s", homeEnv, errHomeNotDir, home)
	}
	return nil
}

// journalPath keeps home as given rather than cleaning it, so the path
// reported back matches what JOURNAL_HOME says.
func journalPath(home, stem string) string {
	name := stem + ".md"
	if home == "" || os.IsPathSeparator(home[len(home)-1]) {
		return home + name
	}
	return home + string(filepath.Separator) + name
}
