package response

type WatchEvent struct {
	Type  string `json:"type"`
	Cart  *Cart  `json:"cart,omitempty"`
	Error string `json:"error,omitempty"`
}

const (
	WatchEventSnapshot   = "snapshot"
	WatchEventSyncFailed = "sync_failed"
)
