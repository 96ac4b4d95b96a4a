package live

import (
	"encoding/json"
	"time"

	"polaris-api/internal/realtime"
)

type Action string

const (
	ActionWatch       Action = "watch"
	ActionRefetch     Action = "refetch"
	ActionUnwatch     Action = "unwatch"
	ActionSearch      Action = "search"
	ActionUpdateAlert Action = "update_alert"
	ActionSubscribe   Action = "subscribe"
	ActionUnsubscribe Action = "unsubscribe"
)

type View string

const (
	ViewDashboard View = "dashboard"
	ViewKPIs      View = "kpis"
	ViewKPITrends View = "kpi_trends"
	ViewVoC       View = "voc"
	ViewVoE       View = "voe"
	ViewAlerts    View = "alerts"
	ViewSurveys   View = "surveys"
	ViewReports   View = "reports"

	// Frames of the report search and the optimistic alert list use these
	// names. They cannot be watched.
	ViewSearch       View = "search"
	ViewAlertUpdates View = "alert_updates"
)

// Params are the filters of a watched view. Fields a view does not use are
// ignored. Two watches with equal params share one fetch.
type Params struct {
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
	Type       string `json:"type,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Category   string `json:"category,omitempty"`
	Sentiment  string `json:"sentiment,omitempty"`
	Search     string `json:"search,omitempty"`
	TimeRange  string `json:"time_range,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

// Command is one client message.
type Command struct {
	Action     Action         `json:"action"`
	View       View           `json:"view,omitempty"`
	Params     Params         `json:"params,omitempty"`
	Query      string         `json:"query,omitempty"`
	ID         string         `json:"id,omitempty"`
	Status     string         `json:"status,omitempty"`
	Collection string         `json:"collection,omitempty"`
	Event      realtime.Event `json:"event,omitempty"`
}

type FrameType string

const (
	FrameState  FrameType = "state"
	FrameChange FrameType = "change"
	FrameError  FrameType = "error"
)

// Frame is one server message.
type Frame struct {
	Type    FrameType        `json:"type"`
	View    View             `json:"view,omitempty"`
	Data    any              `json:"data,omitempty"`
	Loading bool             `json:"loading,omitempty"`
	Error   string           `json:"error,omitempty"`
	Change  *realtime.Change `json:"change,omitempty"`
	At      time.Time        `json:"at"`
}

func (f Frame) ToJSON() ([]byte, error) {
	return json.Marshal(f)
}

// HubStats represents hub statistics
type HubStats struct {
	ActiveConnections int   `json:"active_connections"`
	TotalUniqueUsers  int   `json:"total_unique_users"`
	TotalFramesSent   int64 `json:"total_frames_sent"`
	TotalFramesFailed int64 `json:"total_frames_failed"`
}
