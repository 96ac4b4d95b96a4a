package sqlboiler

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const TableNames_VoeFeedback = "voe_feedback"

// VoeFeedback is an object representing the database table.
type VoeFeedback struct {
	ID              string      `boil:"id" json:"id" toml:"id" yaml:"id"`
	Employee        string      `boil:"employee" json:"employee" toml:"employee" yaml:"employee"`
	Department      string      `boil:"department" json:"department" toml:"department" yaml:"department"`
	Sentiment       null.String `boil:"sentiment" json:"sentiment,omitempty" toml:"sentiment" yaml:"sentiment,omitempty"`
	EngagementScore float64     `boil:"engagement_score" json:"engagement_score" toml:"engagement_score" yaml:"engagement_score"`
	Feedback        string      `boil:"feedback" json:"feedback" toml:"feedback" yaml:"feedback"`
	Category        string      `boil:"category" json:"category" toml:"category" yaml:"category"`
	CreatedAt       time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time   `boil:"updated_at" json:"updated_at" toml:"updated_at" yaml:"updated_at"`
}

var VoeFeedbackColumns = struct {
	ID              string
	Employee        string
	Department      string
	Sentiment       string
	EngagementScore string
	Feedback        string
	Category        string
	CreatedAt       string
	UpdatedAt       string
}{
	ID:              "id",
	Employee:        "employee",
	Department:      "department",
	Sentiment:       "sentiment",
	EngagementScore: "engagement_score",
	Feedback:        "feedback",
	Category:        "category",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}

var VoeFeedbackWhere = struct {
	ID         whereHelperstring
	Department whereHelperstring
	Sentiment  whereHelperstring
	Category   whereHelperstring
	CreatedAt  whereHelpertime_Time
}{
	ID:         whereHelperstring{field: "\"voe_feedback\".\"id\""},
	Department: whereHelperstring{field: "\"voe_feedback\".\"department\""},
	Sentiment:  whereHelperstring{field: "\"voe_feedback\".\"sentiment\""},
	Category:   whereHelperstring{field: "\"voe_feedback\".\"category\""},
	CreatedAt:  whereHelpertime_Time{field: "\"voe_feedback\".\"created_at\""},
}

func VoeFeedbacks(mods ...qm.QueryMod) TableQuery[VoeFeedback] {
	return newTableQuery[VoeFeedback](TableNames_VoeFeedback, mods)
}

func (o *VoeFeedback) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	cols := M{
		VoeFeedbackColumns.Employee:        o.Employee,
		VoeFeedbackColumns.Department:      o.Department,
		VoeFeedbackColumns.Sentiment:       o.Sentiment,
		VoeFeedbackColumns.EngagementScore: o.EngagementScore,
		VoeFeedbackColumns.Feedback:        o.Feedback,
		VoeFeedbackColumns.Category:        o.Category,
	}
	if o.ID != "" {
		cols[VoeFeedbackColumns.ID] = o.ID
	}
	return insertReturning(ctx, exec, TableNames_VoeFeedback, cols, o)
}
