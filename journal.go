package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

var errJournalMissing = errors.New("Journal file does not exist")

func entryLine(t time.Time, text string) string {
	return fmt.Sprintf("JOURNAL CLI %02d:%02d %s -> %s\n", t.Hour(), t.Minute(), clockFace(t.Hour()), text)
}

// appendEntry writes line to the end of an existing journal file.
// The file is never created here.
func appendEntry(path, line string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", errJournalMissing, path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("Failed to open journal file %q: %w", path, err)
	}
	defer f.Close()

	log.Printf("appending %d bytes to %s", len(line), path)
	if _, err := f.Write([]byte(line)); err != nil {
		return fmt.Errorf("Failed to write to journal file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Failed to close journal file: %w", err)
	}
	return nil
}
