package postgres

import (
	"context"

	"polaris-api/internal/model"
	"polaris-api/internal/sqlboiler"
	"polaris-api/internal/survey/repository"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Survey, error) {
	rows, err := sqlboiler.Surveys(r.buildListQuery(opts)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.survey.repository.postgres.List.All: %v", err)
		return nil, errors.Wrap(err, "list surveys")
	}

	res := make([]model.Survey, len(rows))
	for i, s := range rows {
		res[i] = model.NewSurveyFromDB(s)
	}
	return res, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Survey, error) {
	row := opts.Survey.ToDBSurvey()
	if err := row.Insert(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.survey.repository.postgres.Create.Insert: %v", err)
		return model.Survey{}, errors.Wrap(err, "create survey")
	}
	return model.NewSurveyFromDB(row), nil
}
