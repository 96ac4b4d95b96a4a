package postgres

import (
	"polaris-api/internal/feedback/repository"
	"polaris-api/internal/sqlboiler"
	"polaris-api/pkg/filter"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildCustomerQuery(opts repository.ListOptions) []qm.QueryMod {
	var mods []qm.QueryMod

	if filter.IsSet(opts.Filter.Sentiment) {
		mods = append(mods, sqlboiler.VocFeedbackWhere.Sentiment.EQ(opts.Filter.Sentiment))
	}
	if filter.IsSet(opts.Filter.Category) {
		mods = append(mods, sqlboiler.VocFeedbackWhere.Category.EQ(opts.Filter.Category))
	}
	if !opts.Filter.Since.IsZero() {
		mods = append(mods, sqlboiler.VocFeedbackWhere.CreatedAt.GTE(opts.Filter.Since))
	}

	return appendPage(mods, sqlboiler.VocFeedbackColumns.CreatedAt, opts.Limit)
}

func (r *implRepository) buildEmployeeQuery(opts repository.ListOptions) []qm.QueryMod {
	var mods []qm.QueryMod

	if filter.IsSet(opts.Filter.Department) {
		mods = append(mods, sqlboiler.VoeFeedbackWhere.Department.EQ(opts.Filter.Department))
	}
	if filter.IsSet(opts.Filter.Sentiment) {
		mods = append(mods, sqlboiler.VoeFeedbackWhere.Sentiment.EQ(opts.Filter.Sentiment))
	}
	if filter.IsSet(opts.Filter.Category) {
		mods = append(mods, sqlboiler.VoeFeedbackWhere.Category.EQ(opts.Filter.Category))
	}
	if !opts.Filter.Since.IsZero() {
		mods = append(mods, sqlboiler.VoeFeedbackWhere.CreatedAt.GTE(opts.Filter.Since))
	}

	return appendPage(mods, sqlboiler.VoeFeedbackColumns.CreatedAt, opts.Limit)
}

func appendPage(mods []qm.QueryMod, createdAt string, limit int) []qm.QueryMod {
	mods = append(mods, qm.OrderBy(createdAt+" DESC"))
	if limit > 0 {
		mods = append(mods, qm.Limit(limit))
	}
	return mods
}
