package repository

import "github.com/routinemonitor/backend/internal/domain/entity"

// TeamMemberRepository defines the interface for team-directory operations.
type TeamMemberRepository interface {
	Create(m *entity.TeamMember) error
	GetByID(id string) (*entity.TeamMember, error)
	List() ([]*entity.TeamMember, error)
	SearchByName(query string) ([]*entity.TeamMember, error)
	Update(m *entity.TeamMember) error
	Delete(id string) error
}
