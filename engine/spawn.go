package engine

import (
	"math/rand"
	"strings"

	"github.com/lixenwraith/road-fighter/asset"
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
	"github.com/lixenwraith/road-fighter/entity"
)

// spawn creates the entity for a track kind at x
// Returns nil without error for kinds that spawn nothing
func spawn(provider asset.Provider, pf core.Playfield, kind string, x float64, rng *rand.Rand) (*entity.Entity, error) {
	var (
		y      float64
		color  = core.ColorRed
		isBomb bool
	)

	switch kind {
	case "bomb":
		y, color, isBomb = constants.BombSpawnY, core.ColorYellow, true
	case "hole", "small_hole":
		y = float64(pf.Height - constants.HoleRowOffset)
	case "wall", "tree", "finish":
		y = float64(pf.Height - constants.ObstacleRowOffset)
	case "house":
		y = float64(pf.Height - constants.HouseRowOffset)
	default:
		if !strings.Contains(kind, "cloud") {
			return nil, nil
		}
		y = float64(rng.Intn(constants.CloudMaxY + 1))
		color = cloudColor(kind)
	}

	tpl, err := loadTemplate(provider, kind, color)
	if err != nil {
		return nil, err
	}
	if isBomb {
		return entity.NewBomb(kind, x, y, tpl.glyph, tpl.colors, tpl.color), nil
	}
	return entity.NewObstacle(kind, x, y, tpl.glyph, tpl.colors, tpl.color), nil
}

// cloudColor alternates cloud shades by texture suffix
func cloudColor(kind string) core.Color {
	if strings.HasSuffix(kind, "2") || strings.HasSuffix(kind, "4") {
		return core.ColorBlue
	}
	return core.ColorCyan
}
