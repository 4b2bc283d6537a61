package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BahriaResearchLab/hotelier/pkg/hotel"
)

const (
	feedbackDelimiter = " | "

	errorSubjectMaintenance = "maintenance"
	errorSubjectFeedback    = "feedback"
	errorCodeAppend         = "append"
)

// AppendMaintenance appends one log line. Unlike the snapshot resources the
// maintenance log is append-only by design.
func (store *Store) AppendMaintenance(ctx context.Context, entry hotel.MaintenanceEntry) error {
	line := entry.String() + "\n"
	if err := store.appendLine(maintenanceFileName, line); err != nil {
		return wrapStoreError(errorSubjectMaintenance, errorCodeAppend, err)
	}
	return nil
}

// MaintenanceLines returns the raw log lines, oldest first.
func (store *Store) MaintenanceLines(ctx context.Context) ([]string, error) {
	content, found, err := store.readResource(maintenanceFileName, errorSubjectMaintenance)
	if err != nil || !found {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// AppendFeedback appends one "stars | text" line.
func (store *Store) AppendFeedback(ctx context.Context, entry hotel.Feedback) error {
	line := fmt.Sprintf("%d%s%s\n", entry.Stars, feedbackDelimiter, entry.Text)
	if err := store.appendLine(feedbackFileName, line); err != nil {
		return wrapStoreError(errorSubjectFeedback, errorCodeAppend, err)
	}
	return nil
}

// Feedback parses the feedback log, oldest first. Lines that do not match
// the "stars | text" shape are skipped, not fatal: the log is free text.
func (store *Store) Feedback(ctx context.Context) ([]hotel.Feedback, error) {
	content, found, err := store.readResource(feedbackFileName, errorSubjectFeedback)
	if err != nil || !found {
		return nil, err
	}
	var entries []hotel.Feedback
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		starsToken, text, ok := strings.Cut(line, feedbackDelimiter)
		if !ok {
			continue
		}
		stars, err := strconv.Atoi(strings.TrimSpace(starsToken))
		if err != nil {
			continue
		}
		entry, err := hotel.NewFeedback(stars, text)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (store *Store) appendLine(name string, line string) error {
	file, err := os.OpenFile(filepath.Join(store.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.WriteString(line)
	closeErr := file.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}
