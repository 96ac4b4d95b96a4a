package sqlboiler

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const TableNames_Reports = "reports"

// Report is an object representing the database table.
type Report struct {
	ID          string      `boil:"id" json:"id" toml:"id" yaml:"id"`
	Title       string      `boil:"title" json:"title" toml:"title" yaml:"title"`
	Description null.String `boil:"description" json:"description,omitempty" toml:"description" yaml:"description,omitempty"`
	Category    string      `boil:"category" json:"category" toml:"category" yaml:"category"`
	Status      string      `boil:"status" json:"status" toml:"status" yaml:"status"`
	Author      string      `boil:"author" json:"author" toml:"author" yaml:"author"`
	CreatedAt   time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time   `boil:"updated_at" json:"updated_at" toml:"updated_at" yaml:"updated_at"`
}

var ReportColumns = struct {
	ID          string
	Title       string
	Description string
	Category    string
	Status      string
	Author      string
	CreatedAt   string
	UpdatedAt   string
}{
	ID:          "id",
	Title:       "title",
	Description: "description",
	Category:    "category",
	Status:      "status",
	Author:      "author",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

var ReportWhere = struct {
	ID          whereHelperstring
	Title       whereHelperstring
	Description whereHelperstring
	Category    whereHelperstring
	Status      whereHelperstring
	CreatedAt   whereHelpertime_Time
}{
	ID:          whereHelperstring{field: "\"reports\".\"id\""},
	Title:       whereHelperstring{field: "\"reports\".\"title\""},
	Description: whereHelperstring{field: "\"reports\".\"description\""},
	Category:    whereHelperstring{field: "\"reports\".\"category\""},
	Status:      whereHelperstring{field: "\"reports\".\"status\""},
	CreatedAt:   whereHelpertime_Time{field: "\"reports\".\"created_at\""},
}

func Reports(mods ...qm.QueryMod) TableQuery[Report] {
	return newTableQuery[Report](TableNames_Reports, mods)
}

func (o *Report) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	cols := M{
		ReportColumns.Title:       o.Title,
		ReportColumns.Description: o.Description,
		ReportColumns.Category:    o.Category,
		ReportColumns.Status:      o.Status,
		ReportColumns.Author:      o.Author,
	}
	if o.ID != "" {
		cols[ReportColumns.ID] = o.ID
	}
	return insertReturning(ctx, exec, TableNames_Reports, cols, o)
}
