package models

// WebhookRequest is the Dialogflow fulfillment payload. Only the query
// result is consumed; parameters arrive loosely typed and are normalized
// by the booking service.
type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
	Session     string      `json:"session"`
}

type QueryResult struct {
	Intent     Intent         `json:"intent"`
	Parameters map[string]any `json:"parameters"`
}

type Intent struct {
	DisplayName string `json:"displayName"`
}

// WebhookResponse carries the fulfillment text back to the agent.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}
