package repositories

import (
	"lumo/internal/models/store_models"
)

// CatalogRepository serves the fixed, ordered quiz step catalog. There is no
// write path; the backing data is package-level and immutable.
type CatalogRepository interface {
	All() []store_models.QuizStep
	ByStep(step int) (*store_models.QuizStep, bool)
	Count() int
}

type StaticCatalogRepository struct {
	steps []store_models.QuizStep
}

func NewStaticCatalogRepository() CatalogRepository {
	return &StaticCatalogRepository{steps: quizSteps}
}

func (r *StaticCatalogRepository) All() []store_models.QuizStep {
	return r.steps
}

func (r *StaticCatalogRepository) ByStep(step int) (*store_models.QuizStep, bool) {
	for i := range r.steps {
		if r.steps[i].Step == step {
			return &r.steps[i], true
		}
	}
	return nil, false
}

func (r *StaticCatalogRepository) Count() int {
	return len(r.steps)
}
