package render

import (
	"github.com/lixenwraith/road-fighter/entity"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Layout Layout

	// Entities in paint order, read-only
	Entities []*entity.Entity

	// Status is the text shown in the box beneath the playfield
	Status string
}
