package sqlboiler

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const TableNames_VocFeedback = "voc_feedback"

// VocFeedback is an object representing the database table.
type VocFeedback struct {
	ID        string      `boil:"id" json:"id" toml:"id" yaml:"id"`
	Customer  string      `boil:"customer" json:"customer" toml:"customer" yaml:"customer"`
	Sentiment null.String `boil:"sentiment" json:"sentiment,omitempty" toml:"sentiment" yaml:"sentiment,omitempty"`
	Score     float64     `boil:"score" json:"score" toml:"score" yaml:"score"`
	Category  string      `boil:"category" json:"category" toml:"category" yaml:"category"`
	Feedback  string      `boil:"feedback" json:"feedback" toml:"feedback" yaml:"feedback"`
	Source    null.String `boil:"source" json:"source,omitempty" toml:"source" yaml:"source,omitempty"`
	Impact    null.String `boil:"impact" json:"impact,omitempty" toml:"impact" yaml:"impact,omitempty"`
	CreatedAt time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt time.Time   `boil:"updated_at" json:"updated_at" toml:"updated_at" yaml:"updated_at"`
}

var VocFeedbackColumns = struct {
	ID        string
	Customer  string
	Sentiment string
	Score     string
	Category  string
	Feedback  string
	Source    string
	Impact    string
	CreatedAt string
	UpdatedAt string
}{
	ID:        "id",
	Customer:  "customer",
	Sentiment: "sentiment",
	Score:     "score",
	Category:  "category",
	Feedback:  "feedback",
	Source:    "source",
	Impact:    "impact",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

var VocFeedbackWhere = struct {
	ID        whereHelperstring
	Sentiment whereHelperstring
	Category  whereHelperstring
	CreatedAt whereHelpertime_Time
}{
	ID:        whereHelperstring{field: "\"voc_feedback\".\"id\""},
	Sentiment: whereHelperstring{field: "\"voc_feedback\".\"sentiment\""},
	Category:  whereHelperstring{field: "\"voc_feedback\".\"category\""},
	CreatedAt: whereHelpertime_Time{field: "\"voc_feedback\".\"created_at\""},
}

func VocFeedbacks(mods ...qm.QueryMod) TableQuery[VocFeedback] {
	return newTableQuery[VocFeedback](TableNames_VocFeedback, mods)
}

// Insert a single record. Columns left to their database defaults (id,
// timestamps) are read back into o.
func (o *VocFeedback) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	cols := M{
		VocFeedbackColumns.Customer:  o.Customer,
		VocFeedbackColumns.Sentiment: o.Sentiment,
		VocFeedbackColumns.Score:     o.Score,
		VocFeedbackColumns.Category:  o.Category,
		VocFeedbackColumns.Feedback:  o.Feedback,
		VocFeedbackColumns.Source:    o.Source,
		VocFeedbackColumns.Impact:    o.Impact,
	}
	if o.ID != "" {
		cols[VocFeedbackColumns.ID] = o.ID
	}
	return insertReturning(ctx, exec, TableNames_VocFeedback, cols, o)
}
