package helpers

import (
	"errors"
	"fmt"
	"sync/atomic"

	"stock-backend/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type StockBackendError struct {
	Message string
	Cause   error
}

func (e *StockBackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StockBackendError) Unwrap() error {
	return e.Cause
}

// Distinct error types for errors.As at the boundaries
type ConfigurationError struct{ StockBackendError }
type NetworkError struct{ StockBackendError }
type DataSourceError struct{ StockBackendError }
type DatabaseError struct{ StockBackendError }
type IndexError struct{ StockBackendError }
type LLMError struct{ StockBackendError }

func NewConfigurationError(msg string, cause error) error {
	return &ConfigurationError{StockBackendError{Message: msg, Cause: cause}}
}

func NewNetworkError(msg string, cause error) error {
	return &NetworkError{StockBackendError{Message: msg, Cause: cause}}
}

func NewDataSourceError(msg string, cause error) error {
	return &DataSourceError{StockBackendError{Message: msg, Cause: cause}}
}

func NewDatabaseError(msg string, cause error) error {
	return &DatabaseError{StockBackendError{Message: msg, Cause: cause}}
}

func NewIndexError(msg string, cause error) error {
	return &IndexError{StockBackendError{Message: msg, Cause: cause}}
}

func NewLLMError(msg string, cause error) error {
	return &LLMError{StockBackendError{Message: msg, Cause: cause}}
}

// -----------------------------------------------------------------------------
// Sentinels
// -----------------------------------------------------------------------------

var (
	ErrIndexNotLoaded = errors.New("vector index is not loaded")
	ErrBlobNotFound   = errors.New("blob not found")
	ErrEmptyQuote     = errors.New("empty quote")
)

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

// ErrorHandler logs errors from background jobs and keeps a running count.
type ErrorHandler struct {
	Logger     *logger.Logger
	errorCount atomic.Int64
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{Logger: log.Named("ErrorHandler")}
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) Handle(err error, context string) {
	if err == nil {
		return
	}
	e.errorCount.Add(1)
	e.Logger.Error("Error in %s: %v", context, err)
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) ErrorCount() int64 {
	return e.errorCount.Load()
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) ResetErrorCount() {
	e.errorCount.Store(0)
}
