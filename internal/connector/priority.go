package connector

import "sort"

// ErrorType is the retry-relevant classification of a processor error code.
type ErrorType int

const (
	UnknownError ErrorType = iota + 1
	UserError
	BusinessError
	TechnicalError
)

func (t ErrorType) String() string {
	switch t {
	case UserError:
		return "user_error"
	case BusinessError:
		return "business_error"
	case TechnicalError:
		return "technical_error"
	default:
		return "unknown_error"
	}
}

// rank orders error types for priority selection. Lower ranks surface
// first. The ordering mirrors the upstream policy: unclassified codes win
// so they are never hidden behind known ones.
func (t ErrorType) rank() int {
	switch t {
	case UserError:
		return 2
	case BusinessError:
		return 3
	case TechnicalError:
		return 4
	default:
		return 1
	}
}

// ErrorCodeAndMessage is one upstream error code/message pair.
type ErrorCodeAndMessage struct {
	ErrorCode    string
	ErrorMessage string
}

// ErrorTypeMapping classifies a processor-specific error code. The lookup
// is static and total: unknown codes map to UnknownError, never to a
// failure.
type ErrorTypeMapping interface {
	ErrorType(errorCode, errorMessage string) ErrorType
}

// ErrorCodeMessageByPriority picks the single highest-priority code/message
// pair from a list of simultaneous upstream errors. The selection is
// deterministic: ties keep the upstream order. Returns nil for an empty
// list.
func ErrorCodeMessageByPriority(m ErrorTypeMapping, errs []ErrorCodeAndMessage) *ErrorCodeAndMessage {
	if len(errs) == 0 {
		return nil
	}
	ranked := make([]ErrorCodeAndMessage, len(errs))
	copy(ranked, errs)
	sort.SliceStable(ranked, func(i, j int) bool {
		ri := m.ErrorType(ranked[i].ErrorCode, ranked[i].ErrorMessage).rank()
		rj := m.ErrorType(ranked[j].ErrorCode, ranked[j].ErrorMessage).rank()
		return ri < rj
	})
	return &ranked[0]
}
