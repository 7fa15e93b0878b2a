package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type GetItemSuggestionsQueryHandler struct {
	db *gorm.DB
}

func NewGetItemSuggestionsQueryHandler(db *gorm.DB) GetItemSuggestionsQueryHandler {
	return GetItemSuggestionsQueryHandler{db: db}
}

// Handle returns distinct item names matching the fragment case-insensitively, sorted.
func (h GetItemSuggestionsQueryHandler) Handle(ctx context.Context, query GetItemSuggestionsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + likeEscaper.Replace(query.Fragment()) + "%"

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT name
		FROM order_items
		WHERE name ILIKE ?
		ORDER BY name
		LIMIT ?
	`, pattern, ItemSuggestionLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0, ItemSuggestionLimit)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
