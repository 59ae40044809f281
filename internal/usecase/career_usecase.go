package usecase

import (
	"context"

	"career-compass/internal/domain/catalog"
)

type CareerUsecase interface {
	List(ctx context.Context) ([]CareerSummary, error)
	Detail(ctx context.Context, career string) (CareerDetail, error)
}

type CareerSummary struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	TotalSkills    int    `json:"total_skills"`
	RequiredSkills int    `json:"required_skills"`
	BaseSalary     int    `json:"base_salary"`
}

type CareerDetail struct {
	CareerSummary
	MinExperience int                   `json:"min_experience"`
	MaxExperience int                   `json:"max_experience"`
	Requirements  []catalog.Requirement `json:"requirements"`
}

type Careers struct {
	src CatalogSource
}

func NewCareerUsecase(src CatalogSource) *Careers {
	return &Careers{src: src}
}

func (u *Careers) List(ctx context.Context) ([]CareerSummary, error) {
	store := u.src.Store()
	if store == nil {
		return nil, ErrInternal
	}

	careers := store.Careers()
	out := make([]CareerSummary, 0, len(careers))
	for _, c := range careers {
		out = append(out, summarize(c))
	}
	return out, nil
}

func (u *Careers) Detail(ctx context.Context, career string) (CareerDetail, error) {
	store := u.src.Store()
	if store == nil {
		return CareerDetail{}, ErrInternal
	}

	target, ok := store.Career(career)
	if !ok {
		return CareerDetail{}, ErrCareerNotFound
	}
	return CareerDetail{
		CareerSummary: summarize(target),
		MinExperience: target.Market.MinExperience,
		MaxExperience: target.Market.MaxExperience,
		Requirements:  target.Requirements,
	}, nil
}

func summarize(c *catalog.Career) CareerSummary {
	required := 0
	for _, r := range c.Requirements {
		if r.IsRequired {
			required++
		}
	}
	return CareerSummary{
		Name:           c.Name,
		Description:    c.Description,
		TotalSkills:    len(c.Requirements),
		RequiredSkills: required,
		BaseSalary:     c.Market.BaseSalary,
	}
}
