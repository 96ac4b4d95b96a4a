package usecase

import (
	"context"
	"sort"
	"strings"

	"polaris-api/internal/model"
	"polaris-api/internal/report"
	"polaris-api/internal/report/repository"
	"polaris-api/pkg/filter"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip report.ListInput) ([]model.Report, error) {
	reports, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: toRepoFilter(ip.Filter),
		Limit:  filter.Limit(ip.Filter.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.List: %v", err)
		return nil, err
	}
	return reports, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip report.GetInput) (report.GetOutput, error) {
	reports, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter:   toRepoFilter(ip.Filter),
		PagQuery: ip.PagQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Get: %v", err)
		return report.GetOutput{}, err
	}

	return report.GetOutput{
		Reports:   reports,
		Paginator: pag,
	}, nil
}

// Search returns reports whose title or description contains the query.
// A blank query matches nothing.
func (uc *usecase) Search(ctx context.Context, sc model.Scope, ip report.SearchInput) ([]model.Report, error) {
	query := strings.TrimSpace(ip.Query)
	if query == "" {
		return []model.Report{}, nil
	}

	limit := ip.Limit
	if limit <= 0 {
		limit = report.SearchLimit
	}

	reports, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{Search: query},
		Limit:  filter.Limit(limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Search: %v", err)
		return nil, err
	}
	return reports, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip report.CreateInput) (model.Report, error) {
	if err := ip.Validate(); err != nil {
		return model.Report{}, err
	}

	status := ip.Status
	if status == "" {
		status = model.ReportStatusDraft
	}
	author := ip.Author
	if author == "" {
		author = sc.Email
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Report: model.Report{
			Title:       ip.Title,
			Description: ip.Description,
			Category:    ip.Category,
			Status:      status,
			Author:      author,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Create: %v", err)
		return model.Report{}, err
	}
	return created, nil
}

func (uc *usecase) Analytics(ctx context.Context, sc model.Scope) (report.Analytics, error) {
	reports, err := uc.repo.List(ctx, sc, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Analytics: %v", err)
		return report.Analytics{}, err
	}
	return analyze(reports), nil
}

func analyze(reports []model.Report) report.Analytics {
	counts := make(map[string]int)
	for _, r := range reports {
		counts[string(r.Category)]++
	}

	res := report.Analytics{
		TotalReports: len(reports),
		Categories:   make([]report.CategoryStat, 0, len(counts)),
	}
	for category, n := range counts {
		res.Categories = append(res.Categories, report.CategoryStat{
			Category:   category,
			Count:      n,
			Percentage: float64(n) / float64(len(reports)) * 100,
		})
	}
	sort.Slice(res.Categories, func(i, j int) bool {
		return res.Categories[i].Category < res.Categories[j].Category
	})

	return res
}

func toRepoFilter(f report.Filter) repository.Filter {
	return repository.Filter{
		Category: f.Category,
		Status:   f.Status,
		Search:   f.Search,
	}
}
