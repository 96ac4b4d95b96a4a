package sqlboiler

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const TableNames_Alerts = "alerts"

// Alert is an object representing the database table.
type Alert struct {
	ID        string      `boil:"id" json:"id" toml:"id" yaml:"id"`
	Title     string      `boil:"title" json:"title" toml:"title" yaml:"title"`
	Message   string      `boil:"message" json:"message" toml:"message" yaml:"message"`
	Type      string      `boil:"type" json:"type" toml:"type" yaml:"type"`
	Status    string      `boil:"status" json:"status" toml:"status" yaml:"status"`
	Priority  string      `boil:"priority" json:"priority" toml:"priority" yaml:"priority"`
	Source    null.String `boil:"source" json:"source,omitempty" toml:"source" yaml:"source,omitempty"`
	CreatedAt time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt time.Time   `boil:"updated_at" json:"updated_at" toml:"updated_at" yaml:"updated_at"`
}

var AlertColumns = struct {
	ID        string
	Title     string
	Message   string
	Type      string
	Status    string
	Priority  string
	Source    string
	CreatedAt string
	UpdatedAt string
}{
	ID:        "id",
	Title:     "title",
	Message:   "message",
	Type:      "type",
	Status:    "status",
	Priority:  "priority",
	Source:    "source",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

var AlertWhere = struct {
	ID        whereHelperstring
	Type      whereHelperstring
	Status    whereHelperstring
	Priority  whereHelperstring
	CreatedAt whereHelpertime_Time
}{
	ID:        whereHelperstring{field: "\"alerts\".\"id\""},
	Type:      whereHelperstring{field: "\"alerts\".\"type\""},
	Status:    whereHelperstring{field: "\"alerts\".\"status\""},
	Priority:  whereHelperstring{field: "\"alerts\".\"priority\""},
	CreatedAt: whereHelpertime_Time{field: "\"alerts\".\"created_at\""},
}

func Alerts(mods ...qm.QueryMod) TableQuery[Alert] {
	return newTableQuery[Alert](TableNames_Alerts, mods)
}

func (o *Alert) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	cols := M{
		AlertColumns.Title:    o.Title,
		AlertColumns.Message:  o.Message,
		AlertColumns.Type:     o.Type,
		AlertColumns.Status:   o.Status,
		AlertColumns.Priority: o.Priority,
		AlertColumns.Source:   o.Source,
	}
	if o.ID != "" {
		cols[AlertColumns.ID] = o.ID
	}
	return insertReturning(ctx, exec, TableNames_Alerts, cols, o)
}

func UpdateAlert(ctx context.Context, exec boil.ContextExecutor, id string, cols M) (*Alert, error) {
	o := &Alert{}
	if err := updateReturning(ctx, exec, TableNames_Alerts, id, cols, o); err != nil {
		return nil, err
	}
	return o, nil
}
