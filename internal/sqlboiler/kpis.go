package sqlboiler

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const TableNames_Kpis = "kpis"

// Kpi is an object representing the database table.
type Kpi struct {
	ID         string      `boil:"id" json:"id" toml:"id" yaml:"id"`
	Name       string      `boil:"name" json:"name" toml:"name" yaml:"name"`
	Value      float64     `boil:"value" json:"value" toml:"value" yaml:"value"`
	Target     float64     `boil:"target" json:"target" toml:"target" yaml:"target"`
	Change     float64     `boil:"change" json:"change" toml:"change" yaml:"change"`
	Status     string      `boil:"status" json:"status" toml:"status" yaml:"status"`
	Department null.String `boil:"department" json:"department,omitempty" toml:"department" yaml:"department,omitempty"`
	CreatedAt  time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time   `boil:"updated_at" json:"updated_at" toml:"updated_at" yaml:"updated_at"`
}

var KpiColumns = struct {
	ID         string
	Name       string
	Value      string
	Target     string
	Change     string
	Status     string
	Department string
	CreatedAt  string
	UpdatedAt  string
}{
	ID:         "id",
	Name:       "name",
	Value:      "value",
	Target:     "target",
	Change:     "change",
	Status:     "status",
	Department: "department",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

var KpiWhere = struct {
	ID         whereHelperstring
	Status     whereHelperstring
	Department whereHelpernull_String
	CreatedAt  whereHelpertime_Time
}{
	ID:         whereHelperstring{field: "\"kpis\".\"id\""},
	Status:     whereHelperstring{field: "\"kpis\".\"status\""},
	Department: whereHelpernull_String{field: "\"kpis\".\"department\""},
	CreatedAt:  whereHelpertime_Time{field: "\"kpis\".\"created_at\""},
}

// Kpis retrieves all the records using an executor.
func Kpis(mods ...qm.QueryMod) TableQuery[Kpi] {
	return newTableQuery[Kpi](TableNames_Kpis, mods)
}

// UpdateKpi writes cols to the kpi with the given id and returns the stored row.
func UpdateKpi(ctx context.Context, exec boil.ContextExecutor, id string, cols M) (*Kpi, error) {
	o := &Kpi{}
	if err := updateReturning(ctx, exec, TableNames_Kpis, id, cols, o); err != nil {
		return nil, err
	}
	return o, nil
}
