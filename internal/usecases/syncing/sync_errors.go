package syncing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/lead-pipeline-api/pkg/apiErrors"
)

// ErrorKind classifica as falhas que chegam ao orquestrador
type ErrorKind string

const (
	KindFetchFailure  ErrorKind = "fetch_failure"
	KindEmptyResult   ErrorKind = "empty_result"
	KindPersistence   ErrorKind = "persistence"
	KindPartialFunnel ErrorKind = "partial_funnel"
)

var (
	ErrFetchFailed = errors.New("failed to fetch sheet data")
	ErrNoValidData = errors.New("no valid deal data found in the sheet")
	ErrPersistence = errors.New("failed to persist synced data")
	ErrFunnelSync  = errors.New("failed to sync MQL/SQL funnel sheet")
	ErrGenerateID  = errors.New("error generating sync record ID")
)

// SyncError é um erro com contexto adicional para a sincronização
type SyncError struct {
	Kind    ErrorKind
	Err     error  // Erro base
	Cause   error  // Causa original (rede, banco, parse)
	Details string // Detalhes adicionais
}

func (e *SyncError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SyncError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Code retorna o código de erro da API correspondente ao tipo de falha
func (e *SyncError) Code() string {
	switch e.Kind {
	case KindFetchFailure:
		return apiErrors.ErrSheetFetch
	case KindEmptyResult:
		return apiErrors.ErrNoValidData
	case KindPersistence:
		return apiErrors.ErrDatabaseOperation
	default:
		return apiErrors.ErrInternalServer
	}
}

func NewSyncError(kind ErrorKind, err error, cause error, details string) *SyncError {
	return &SyncError{
		Kind:    kind,
		Err:     err,
		Cause:   cause,
		Details: details,
	}
}
