package postgres

import (
	"context"

	"polaris-api/internal/feedback/repository"
	"polaris-api/internal/model"
	"polaris-api/internal/sqlboiler"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Feedback, error) {
	if opts.Kind == model.FeedbackKindEmployee {
		return r.listEmployee(ctx, opts)
	}
	return r.listCustomer(ctx, opts)
}

func (r *implRepository) listCustomer(ctx context.Context, opts repository.ListOptions) ([]model.Feedback, error) {
	rows, err := sqlboiler.VocFeedbacks(r.buildCustomerQuery(opts)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.feedback.repository.postgres.listCustomer.All: %v", err)
		return nil, errors.Wrap(err, "list customer feedback")
	}

	res := make([]model.Feedback, len(rows))
	for i, f := range rows {
		res[i] = model.NewCustomerFeedbackFromDB(f)
	}
	return res, nil
}

func (r *implRepository) listEmployee(ctx context.Context, opts repository.ListOptions) ([]model.Feedback, error) {
	rows, err := sqlboiler.VoeFeedbacks(r.buildEmployeeQuery(opts)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.feedback.repository.postgres.listEmployee.All: %v", err)
		return nil, errors.Wrap(err, "list employee feedback")
	}

	res := make([]model.Feedback, len(rows))
	for i, f := range rows {
		res[i] = model.NewEmployeeFeedbackFromDB(f)
	}
	return res, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Feedback, error) {
	if opts.Feedback.Kind == model.FeedbackKindEmployee {
		row := opts.Feedback.ToDBEmployee()
		if err := row.Insert(ctx, r.db); err != nil {
			r.l.Errorf(ctx, "internal.feedback.repository.postgres.Create.InsertEmployee: %v", err)
			return model.Feedback{}, errors.Wrap(err, "create employee feedback")
		}
		return model.NewEmployeeFeedbackFromDB(row), nil
	}

	row := opts.Feedback.ToDBCustomer()
	if err := row.Insert(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.feedback.repository.postgres.Create.InsertCustomer: %v", err)
		return model.Feedback{}, errors.Wrap(err, "create customer feedback")
	}
	return model.NewCustomerFeedbackFromDB(row), nil
}
