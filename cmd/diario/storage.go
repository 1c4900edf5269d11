// Package main provides the entry point for the diario CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/entrelineas/diario/internal/journal"
)

// resolveStorage returns the journal storage a command should operate on.
// An injected storage (from tests) wins; otherwise the --file persistent
// flag is honored, and the default path resolution applies last.
func resolveStorage(cmd *cobra.Command, injected *journal.FileStorage) (*journal.FileStorage, error) {
	if injected != nil {
		return injected, nil
	}

	if flag := cmd.Root().PersistentFlags().Lookup("file"); flag != nil {
		if path := flag.Value.String(); path != "" {
			return journal.NewFileStorage(path), nil
		}
	}

	return journal.NewDefaultStorage()
}

// loadDocument resolves the storage and reads the document in one step.
func loadDocument(cmd *cobra.Command, injected *journal.FileStorage) (*journal.FileStorage, *journal.Document, error) {
	storage, err := resolveStorage(cmd, injected)
	if err != nil {
		return nil, nil, err
	}
	doc, err := storage.Load()
	if err != nil {
		return nil, nil, err
	}
	return storage, doc, nil
}
