package usecase

import (
	"context"

	"polaris-api/internal/model"
	"polaris-api/internal/survey"
	"polaris-api/internal/survey/repository"
	"polaris-api/pkg/filter"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip survey.ListInput) ([]model.Survey, error) {
	surveys, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			Status: ip.Filter.Status,
			Type:   ip.Filter.Type,
		},
		Limit: filter.Limit(ip.Filter.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.survey.usecase.List: %v", err)
		return nil, err
	}

	return surveys, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip survey.CreateInput) (model.Survey, error) {
	if err := ip.Validate(); err != nil {
		return model.Survey{}, err
	}

	status := ip.Status
	if status == "" {
		status = model.SurveyStatusDraft
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Survey: model.Survey{
			Title:       ip.Title,
			Description: ip.Description,
			Type:        ip.Type,
			Status:      status,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.survey.usecase.Create: %v", err)
		return model.Survey{}, err
	}

	return created, nil
}

// Analytics aggregates every stored survey.
func (uc *usecase) Analytics(ctx context.Context, sc model.Scope) (survey.Analytics, error) {
	surveys, err := uc.repo.List(ctx, sc, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.survey.usecase.Analytics: %v", err)
		return survey.Analytics{}, err
	}

	var (
		res  survey.Analytics
		rate float64
	)
	for _, s := range surveys {
		res.TotalSurveys++
		res.TotalResponses += s.Responses
		rate += s.CompletionRate
		if s.Status == model.SurveyStatusActive {
			res.ActiveSurveys++
		}
	}
	if res.TotalSurveys > 0 {
		res.AvgCompletionRate = rate / float64(res.TotalSurveys)
	}

	return res, nil
}
