package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/routinemonitor/backend/internal/domain/entity"
	repo "github.com/routinemonitor/backend/internal/domain/repository"
	"github.com/routinemonitor/backend/pkg/helpers"
)

// TeamService manages the team-member directory. Entries are plain records
// with no credentials and no owner; any authenticated caller may mutate them.
// When an Elasticsearch client is configured the directory is mirrored into
// an index on every write and search queries go through it; otherwise search
// falls back to a substring match in the store.
type TeamService struct {
	Members repo.TeamMemberRepository
	ES      *elasticsearch.Client
	ESIndex string
	Logger  *logrus.Logger
}

func NewTeamService(members repo.TeamMemberRepository, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *TeamService {
	return &TeamService{Members: members, ES: es, ESIndex: esIndex, Logger: logger}
}

type TeamMemberInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

func (s *TeamService) List(ctx context.Context) ([]*entity.TeamMember, error) {
	return s.Members.List()
}

func (s *TeamService) Create(ctx context.Context, in TeamMemberInput) (*entity.TeamMember, error) {
	m := &entity.TeamMember{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		Status:    entity.MemberStatusActive,
		AvatarURL: helpers.AvatarURLFor(helpers.RandomGender()),
	}
	if err := s.Members.Create(m); err != nil {
		return nil, err
	}
	_ = s.indexMember(ctx, m)
	return m, nil
}

func (s *TeamService) Update(ctx context.Context, id string, in TeamMemberInput) (*entity.TeamMember, error) {
	m, err := s.Members.GetByID(id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTeamMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	m.Name = in.Name
	m.Email = in.Email
	m.Phone = in.Phone
	m.Role = in.Role
	if err := s.Members.Update(m); err != nil {
		return nil, err
	}
	_ = s.indexMember(ctx, m)
	return m, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	m, err := s.Members.GetByID(id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrTeamMemberNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Members.Delete(m.ID); err != nil {
		return err
	}
	s.deleteMemberDoc(ctx, m.ID)
	return nil
}

// Search matches members by name. The store-backed path is a case-insensitive
// substring match; the Elasticsearch path ranks by relevance over name and role.
func (s *TeamService) Search(ctx context.Context, query string) ([]*entity.TeamMember, error) {
	if s.ES == nil || s.ESIndex == "" {
		return s.Members.SearchByName(query)
	}

	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"name^2", "role"},
			},
		},
		"size": 50,
	}
	b, _ := json.Marshal(body)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("es search failed, falling back to store")
		}
		return s.Members.SearchByName(query)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source memberDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]*entity.TeamMember, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source.toEntity())
	}
	return out, nil
}

type memberDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	AvatarURL string `json:"avatar_url"`
	JoinDate  string `json:"join_date"`
}

func (d memberDoc) toEntity() *entity.TeamMember {
	joined, _ := time.Parse(time.RFC3339Nano, d.JoinDate)
	return &entity.TeamMember{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Role:      d.Role,
		Status:    entity.MemberStatus(d.Status),
		AvatarURL: d.AvatarURL,
		JoinDate:  joined,
	}
}

func (s *TeamService) indexMember(ctx context.Context, m *entity.TeamMember) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := memberDoc{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		Status:    string(m.Status),
		AvatarURL: m.AvatarURL,
		JoinDate:  m.JoinDate.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: m.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("member_id", m.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("member_id", m.ID).Warn("es index response error")
	}
	return nil
}

func (s *TeamService) deleteMemberDoc(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("member_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
