package projector

import "github.com/courtside/hoopcast/services/projection-service/pkg/models"

// seasonMethods is every season projection strategy, in the order the
// bundle reports them
var seasonMethods = []models.Method{
	models.MethodCareerAverage,
	models.MethodRecentSeasons,
	models.MethodAgeAdjusted,
}

// All builds the full projection bundle: next game plus every season
// method. A missing half (no recent games, or no career history) leaves its
// slot nil rather than failing the whole bundle; only when neither input
// produces anything does All return ErrInsufficientData.
func (p *Projector) All(window models.RecentWindow, series models.CareerSeries) (*models.AllProjections, error) {
	all := &models.AllProjections{
		SeasonProjections: make(map[models.Method]*models.SeasonProjection, len(seasonMethods)),
	}

	nextGame, err := p.NextGame(window)
	if err == nil {
		all.NextGame = nextGame
	}

	produced := all.NextGame != nil
	for _, method := range seasonMethods {
		projection, err := p.Season(series, method)
		if err != nil {
			all.SeasonProjections[method] = nil
			continue
		}
		all.SeasonProjections[method] = projection
		produced = true
	}

	if !produced {
		return nil, ErrInsufficientData
	}

	return all, nil
}
