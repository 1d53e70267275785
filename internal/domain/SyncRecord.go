package domain

import "time"

type SyncStatus string

const (
	SyncStatusSuccess     SyncStatus = "success"
	SyncStatusError       SyncStatus = "error"
	SyncStatusNeverSynced SyncStatus = "never_synced"
)

// SyncRecord é o único registro de sincronização mantido no banco.
// ContentHash só é preenchido em sincronizações bem sucedidas.
type SyncRecord struct {
	ID            string     `json:"id,omitempty"`
	LastSync      *time.Time `json:"last_sync"`
	Status        SyncStatus `json:"status"`
	RecordsSynced int        `json:"records_synced"`
	ContentHash   string     `json:"content_hash,omitempty"`
	Error         *string    `json:"error,omitempty"`
}

// NeverSynced é o status retornado quando ainda não existe registro
func NeverSynced() *SyncRecord {
	return &SyncRecord{
		Status:        SyncStatusNeverSynced,
		LastSync:      nil,
		RecordsSynced: 0,
	}
}

type AutoSyncReason string

const (
	AutoSyncChangesDetected AutoSyncReason = "changes_detected"
	AutoSyncNoChanges       AutoSyncReason = "no_changes"
	AutoSyncCheckError      AutoSyncReason = "check_error"
)

// SyncResult é o resultado de uma sincronização completa
type SyncResult struct {
	Status        SyncStatus `json:"status"`
	RecordsSynced int        `json:"records_synced"`
	LastSync      time.Time  `json:"last_sync"`
	FunnelSynced  bool       `json:"funnel_synced"`
	FunnelError   *string    `json:"funnel_error,omitempty"`
}

// AutoSyncResult diferencia "nada a fazer" de "algo deu errado"
type AutoSyncResult struct {
	Synced        bool           `json:"synced"`
	Reason        AutoSyncReason `json:"reason"`
	LastSync      *time.Time     `json:"last_sync"`
	RecordsSynced int            `json:"records_synced,omitempty"`
	RecordsCount  int            `json:"records_count,omitempty"`
	FunnelError   *string        `json:"funnel_error,omitempty"`
	Error         *string        `json:"error,omitempty"`
}
