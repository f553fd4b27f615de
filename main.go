package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

const usage = "Usage: journal <your entry text>"

var errNoEntry = errors.New("No journal entry provided. " + usage)

func main() {
	log.SetFlags(0)
	log.SetPrefix("journal: ")
	log.SetOutput(io.Discard)
	if os.Getenv("JOURNAL_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	}
	if err := run(os.Args[1:], os.LookupEnv, time.Now(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, lookup func(string) (string, bool), now time.Time, stdout io.Writer) error {
	cfg, err := loadConfig(lookup)
	if err != nil {
		return err
	}
	if err := checkHome(cfg.home); err != nil {
		return err
	}
	text, err := entryText(args)
	if err != nil {
		return err
	}

	path := journalPath(cfg.home, formatDate(now, cfg.format))
	log.Printf("format %q resolved to %s", cfg.format, path)
	if err := appendEntry(path, entryLine(now, text)); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✓ Entry added to %s\n", path)
	return nil
}

func entryText(args []string) (string, error) {
	if len(args) == 0 {
		return "", errNoEntry
	}
	return strings.Join(args, " "), nil
}
