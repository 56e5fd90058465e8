package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/catalog"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/render"
)

type catalogRepository interface {
	Catalog() *entity.Catalog
	ListGroups(ctx context.Context) ([]*entity.PlanGroup, error)
	FindGroupByID(ctx context.Context, id string) (*entity.PlanGroup, error)
}

type ShowcaseService struct {
	repo catalogRepository
	page *render.Page

	htmlOnce sync.Once
	html     []byte
	htmlErr  error
}

func NewShowcaseService(repo catalogRepository) *ShowcaseService {
	return &ShowcaseService{
		repo: repo,
		page: render.NewPage(repo.Catalog()),
	}
}

func (s *ShowcaseService) Page() *render.Page {
	return s.page
}

// HTML renders the page on first use and returns the same bytes afterwards.
func (s *ShowcaseService) HTML() ([]byte, error) {
	s.htmlOnce.Do(func() {
		var buf bytes.Buffer
		if err := render.WriteHTML(&buf, s.page); err != nil {
			s.htmlErr = err
			return
		}
		s.html = buf.Bytes()
	})
	return s.html, s.htmlErr
}

func (s *ShowcaseService) ListPlanGroups(ctx context.Context) ([]*entity.PlanGroup, error) {
	items, err := s.repo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plan groups: %w", err)
	}
	return items, nil
}

func (s *ShowcaseService) GetPlanGroup(ctx context.Context, id string) (*entity.PlanGroup, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidRequest
	}

	item, err := s.repo.FindGroupByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find plan group: %w", err)
	}
	if item == nil {
		return nil, ErrGroupNotFound
	}
	return item, nil
}

func (s *ShowcaseService) Lint() ([]catalog.Issue, error) {
	return catalog.Validate(s.repo.Catalog())
}
