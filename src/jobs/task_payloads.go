package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeDecisionNotify = "admission:decision-notify"

type DecisionPayload struct {
	ApplicationID string `json:"application_id"`
	Decision      string `json:"decision"` // "approved" หรือ "rejected"
}

func NewDecisionNotifyTask(applicationID, decision string) (*asynq.Task, error) {
	payload, err := json.Marshal(DecisionPayload{ApplicationID: applicationID, Decision: decision})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDecisionNotify, payload), nil
}

const TypeStatsRefresh = "statistics:refresh"

func NewStatsRefreshTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeStatsRefresh, nil), nil
}
