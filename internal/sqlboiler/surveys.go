package sqlboiler

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const TableNames_Surveys = "surveys"

// Survey is an object representing the database table.
type Survey struct {
	ID             string      `boil:"id" json:"id" toml:"id" yaml:"id"`
	Title          string      `boil:"title" json:"title" toml:"title" yaml:"title"`
	Description    null.String `boil:"description" json:"description,omitempty" toml:"description" yaml:"description,omitempty"`
	Status         string      `boil:"status" json:"status" toml:"status" yaml:"status"`
	Type           string      `boil:"type" json:"type" toml:"type" yaml:"type"`
	Responses      int         `boil:"responses" json:"responses" toml:"responses" yaml:"responses"`
	CompletionRate float64     `boil:"completion_rate" json:"completion_rate" toml:"completion_rate" yaml:"completion_rate"`
	CreatedAt      time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time   `boil:"updated_at" json:"updated_at" toml:"updated_at" yaml:"updated_at"`
}

var SurveyColumns = struct {
	ID             string
	Title          string
	Description    string
	Status         string
	Type           string
	Responses      string
	CompletionRate string
	CreatedAt      string
	UpdatedAt      string
}{
	ID:             "id",
	Title:          "title",
	Description:    "description",
	Status:         "status",
	Type:           "type",
	Responses:      "responses",
	CompletionRate: "completion_rate",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

var SurveyWhere = struct {
	ID        whereHelperstring
	Status    whereHelperstring
	Type      whereHelperstring
	CreatedAt whereHelpertime_Time
}{
	ID:        whereHelperstring{field: "\"surveys\".\"id\""},
	Status:    whereHelperstring{field: "\"surveys\".\"status\""},
	Type:      whereHelperstring{field: "\"surveys\".\"type\""},
	CreatedAt: whereHelpertime_Time{field: "\"surveys\".\"created_at\""},
}

func Surveys(mods ...qm.QueryMod) TableQuery[Survey] {
	return newTableQuery[Survey](TableNames_Surveys, mods)
}

func (o *Survey) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	cols := M{
		SurveyColumns.Title:          o.Title,
		SurveyColumns.Description:    o.Description,
		SurveyColumns.Status:         o.Status,
		SurveyColumns.Type:           o.Type,
		SurveyColumns.Responses:      o.Responses,
		SurveyColumns.CompletionRate: o.CompletionRate,
	}
	if o.ID != "" {
		cols[SurveyColumns.ID] = o.ID
	}
	return insertReturning(ctx, exec, TableNames_Surveys, cols, o)
}
