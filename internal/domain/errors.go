package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/scanctl/internal/model"
)

// Sentinel errors returned by the registries and the session.
var (
	ErrUnknownValueType    = errors.New("unknown value type")
	ErrUnknownScanType     = errors.New("unknown scan type")
	ErrNoProcess           = errors.New("no process opened")
	ErrWrongState          = errors.New("operation not allowed in current lifecycle state")
	ErrScanTypeUnavailable = errors.New("scan type not available in current lifecycle state")
	ErrSessionBusy         = errors.New("another lifecycle operation is in progress")
	ErrStalePage           = errors.New("page response superseded by a newer request")
	ErrInvalidPage         = errors.New("invalid page")
	ErrInvalidSelection    = errors.New("selection index out of range")
)

// ValidationError reports a literal that failed the pattern or range check
// of a value type, or an operand whose shape does not fit the scan type.
// It never reaches the engine.
type ValidationError struct {
	ValueType m.ValueType
	Literal   string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Literal == "" && e.ValueType == "" {
		return "invalid operand: " + e.Reason
	}

	return fmt.Sprintf("invalid %s literal %q: %s", e.ValueType, e.Literal, e.Reason)
}

// EngineCallError wraps a rejected command or a transport failure.
type EngineCallError struct {
	Command string
	Err     error
}

func (e *EngineCallError) Error() string {
	return fmt.Sprintf("engine command %s failed: %v", e.Command, e.Err)
}

func (e *EngineCallError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsEngineCallError reports whether err is or wraps an *EngineCallError.
func IsEngineCallError(err error) bool {
	var ee *EngineCallError
	return errors.As(err, &ee)
}
