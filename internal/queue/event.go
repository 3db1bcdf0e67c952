// Package queue defines message payloads exchanged over the message broker.
package queue

// CaseChangedEvent is published whenever a case record is created or
// updated. It carries enough to audit the change and to wake stream
// subscribers on other instances without querying the primary database.
type CaseChangedEvent struct {
    CaseID    uint64 `json:"case_id"`
    CaseNo    string `json:"case_no"`
    Action    string `json:"action"` // "created" | "updated"
    Status    string `json:"status"`
    ActorID   uint64 `json:"actor_id"`
    ActorName string `json:"actor_name"`
    ChangedAt string `json:"changed_at"`
}
