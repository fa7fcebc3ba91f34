package repository

import "github.com/jhoicas/distributor-api/internal/domain/entity"

// SchemeRepository persistence port for promotional schemes. The engine does
// its own eligibility filtering; List returns all scheme rows.
type SchemeRepository interface {
	Create(s *entity.Scheme) error
	GetByID(id string) (*entity.Scheme, error)
	List() ([]entity.Scheme, error)
	Update(s *entity.Scheme) error
}
