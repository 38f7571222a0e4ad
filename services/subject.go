package services

import (
	"encoding/csv"
	"eduak/models"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImportResult counts what an import did.
type ImportResult struct {
	Upserted int
	Skipped  int
}

// ImportSubjects reads a CSV with "title" and "slug" columns and upserts one
// subject per row keyed by slug. Rows missing either value are skipped.
func ImportSubjects(db *gorm.DB, r io.Reader) (ImportResult, error) {
	var result ImportResult

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return result, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return result, fmt.Errorf("csv has no data rows")
	}

	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	titleCol, okTitle := headerIndex["title"]
	slugCol, okSlug := headerIndex["slug"]
	if !okTitle || !okSlug {
		return result, fmt.Errorf("csv must have title and slug columns")
	}

	subjects := make([]models.Subject, 0, len(records)-1)
	for _, row := range records[1:] {
		if titleCol >= len(row) || slugCol >= len(row) {
			result.Skipped++
			continue
		}
		title := strings.TrimSpace(row[titleCol])
		slug := strings.ToLower(strings.TrimSpace(row[slugCol]))
		if title == "" || slug == "" {
			result.Skipped++
			continue
		}
		subjects = append(subjects, models.Subject{Title: title, Slug: slug})
	}
	if len(subjects) == 0 {
		return result, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range subjects {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "updated_at"}),
			}).Create(&subjects[i]).Error
			if err != nil {
				return err
			}
			result.Upserted++
		}
		return nil
	})
	return result, err
}
