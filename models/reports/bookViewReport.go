package reports

import (
	"context"
	"errors"

	"github.com/adidyhq/ledger_backend/config"
	"github.com/adidyhq/ledger_backend/models"
	"github.com/adidyhq/ledger_backend/utils"
)

// FilterEntriesByBook keeps entries filed under the given book, rows
// unmodified, input order preserved. Pure.
func FilterEntriesByBook(entries []*models.Entry, category models.BookCategory) []*models.Entry {
	filtered := make([]*models.Entry, 0)
	for _, entry := range entries {
		if entry.BookCategory == category {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// FilterJournalsByAccountType keeps journal entries touching the given
// account type, input order preserved. Pure.
func FilterJournalsByAccountType(journals []*models.JournalEntry, accountType models.LineAccountType) []*models.JournalEntry {
	filtered := make([]*models.JournalEntry, 0)
	for _, journal := range journals {
		for _, line := range journal.Lines {
			if line.AccountType == accountType {
				filtered = append(filtered, journal)
				break
			}
		}
	}
	return filtered
}

// GetBookEntries lists the user's entries filed under one book, newest first.
func GetBookEntries(ctx context.Context, category models.BookCategory) ([]*models.Entry, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	var entries []*models.Entry
	err := db.WithContext(ctx).
		Where("user_id = ? AND book_category = ?", userId, category).
		Order("entry_date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetBookJournals lists the user's journal entries for one book view, newest
// first. Each book keeps only journal entries that touch its account bucket;
// the ledger book lists the catch-all "other" bucket.
func GetBookJournals(ctx context.Context, bookType models.BookType) ([]*models.JournalEntry, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	accountType, err := bookType.AccountType()
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	var journals []*models.JournalEntry
	err = db.WithContext(ctx).Preload("Lines").
		Where("user_id = ?", userId).
		Order("entry_date DESC, id DESC").
		Find(&journals).Error
	if err != nil {
		return nil, err
	}

	return FilterJournalsByAccountType(journals, accountType), nil
}
