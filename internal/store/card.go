package store

import (
	"github.com/thenoetrevino/grid/internal/idgen"
	"github.com/thenoetrevino/grid/internal/models"
	"github.com/thenoetrevino/grid/internal/types"
)

// ReduceCards maps (cards, action) to a new card list.
// Cards are never removed when their column goes away.
func ReduceCards(cards []models.Card, action Action, ids idgen.Generator) []models.Card {
	switch a := action.(type) {
	case AddCard:
		next := make([]models.Card, 0, len(cards)+1)
		next = append(next, cards...)
		return append(next, models.Card{
			ID:          types.CardID(ids.NewID()),
			Name:        a.Name,
			Description: a.Description,
			ColumnID:    a.ColumnID,
		})

	case RemoveCard:
		return filter(cards, func(c models.Card) bool { return c.ID != a.ID })

	default:
		return cards
	}
}
