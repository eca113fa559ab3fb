package queue

import (
	"encoding/json"
	"time"

	"github.com/casinodex-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskClickRecorded is emitted after every successful click event insert.
	TaskClickRecorded = constants.TaskClickRecorded
	// TaskStatsRollup refreshes campaign counters from the event table.
	TaskStatsRollup = constants.TaskStatsRollup
)

// ClickRecordedPayload carries the identifiers needed to fold one click
// event into the campaign counters.
type ClickRecordedPayload struct {
	EventID    uint      `json:"event_id"`
	CampaignID string    `json:"campaign_id"`
	Source     string    `json:"source"`
	Converted  bool      `json:"converted"`
	RecordedAt time.Time `json:"recorded_at"`
}

// StatsRollupPayload triggers a full counter rebuild for one campaign,
// or for all campaigns when CampaignID is empty.
type StatsRollupPayload struct {
	CampaignID string `json:"campaign_id"`
}

// NewClickRecordedTask creates a click recorded task.
func NewClickRecordedTask(payload ClickRecordedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskClickRecorded, body), nil
}

// NewStatsRollupTask creates a stats rollup task.
func NewStatsRollupTask(payload StatsRollupPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStatsRollup, body), nil
}
