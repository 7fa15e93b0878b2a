package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/guard"
)

// ItemSuggestionLimit caps how many names a suggestion lookup returns.
const ItemSuggestionLimit = 6

var ErrGetItemSuggestionsQueryIsNotConstructed = errors.New(
	"GetItemSuggestionsQuery must be created via NewGetItemSuggestionsQuery constructor",
)

// GetItemSuggestionsQuery looks up previously used item names containing a fragment.
type GetItemSuggestionsQuery struct {
	fragment string

	guard guard.ConstructorGuard
}

// NewGetItemSuggestionsQuery accepts any fragment; an empty one matches every name.
func NewGetItemSuggestionsQuery(fragment string) GetItemSuggestionsQuery {
	return GetItemSuggestionsQuery{
		fragment: strings.TrimSpace(fragment),
		guard:    guard.NewConstructorGuard(),
	}
}

func (q GetItemSuggestionsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemSuggestionsQueryIsNotConstructed)
}

func (q GetItemSuggestionsQuery) Fragment() string {
	return q.fragment
}
