package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/routinemonitor/backend/internal/domain/entity"
	"github.com/routinemonitor/backend/internal/domain/repository"
)

const memberColumns = `id, name, email, phone, role, status, avatar_url, join_date`

type TeamMemberRepository struct {
	pool *pgxpool.Pool
}

func NewTeamMemberRepository(pool *pgxpool.Pool) *TeamMemberRepository {
	return &TeamMemberRepository{pool: pool}
}

func scanMember(row pgx.Row) (*entity.TeamMember, error) {
	m := &entity.TeamMember{}
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Role,
		&m.Status, &m.AvatarURL, &m.JoinDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *TeamMemberRepository) Create(m *entity.TeamMember) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO team_members (name, email, phone, role, status, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, join_date
	`, m.Name, m.Email, m.Phone, m.Role, m.Status, m.AvatarURL)

	return row.Scan(&m.ID, &m.JoinDate)
}

func (r *TeamMemberRepository) GetByID(id string) (*entity.TeamMember, error) {
	ctx := context.Background()
	return scanMember(r.pool.QueryRow(ctx, `
		SELECT `+memberColumns+` FROM team_members WHERE id = $1
	`, id))
}

func (r *TeamMemberRepository) List() ([]*entity.TeamMember, error) {
	return r.query(`SELECT ` + memberColumns + ` FROM team_members ORDER BY join_date`)
}

func (r *TeamMemberRepository) SearchByName(query string) ([]*entity.TeamMember, error) {
	return r.query(`
		SELECT `+memberColumns+` FROM team_members
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`, query)
}

func (r *TeamMemberRepository) query(sql string, args ...any) ([]*entity.TeamMember, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*entity.TeamMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamMemberRepository) Update(m *entity.TeamMember) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE team_members
		SET name = $1, email = $2, phone = $3, role = $4, status = $5, avatar_url = $6
		WHERE id = $7
	`, m.Name, m.Email, m.Phone, m.Role, m.Status, m.AvatarURL, m.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TeamMemberRepository = (*TeamMemberRepository)(nil)
