package pkg

import "errors"

// Storage engine errors.
var (
	// ErrTransportTimeout indicates a token, response or busy poll exceeded
	// its iteration bound.
	ErrTransportTimeout = errors.New("transport timeout")

	// ErrProtocol indicates the card reported a failure in an R1/R3/R7
	// response or a data token.
	ErrProtocol = errors.New("protocol error")

	// ErrNotInitialized indicates a storage call before the card is ready.
	ErrNotInitialized = errors.New("card not initialized")

	// ErrFileUnresolved indicates a file id whose address is the sentinel 0.
	ErrFileUnresolved = errors.New("file unresolved")

	// ErrStreamMisuse indicates a stream was started while one is open, or
	// read/stopped with none open.
	ErrStreamMisuse = errors.New("stream misuse")

	// ErrCardFailed indicates the initialization sequence left the card in
	// the failed state.
	ErrCardFailed = errors.New("card failed")

	// ErrUnsupportedCard indicates the card rejected the interface-condition
	// handshake (not a 2.0+ card at 3.3 V).
	ErrUnsupportedCard = errors.New("unsupported card")

	// ErrEndOfMedia indicates an address beyond the card's capacity.
	ErrEndOfMedia = errors.New("end of media")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrNotSupported indicates an unsupported operation or feature.
	ErrNotSupported = errors.New("not supported")
)

// Class groups errors into the engine's error taxonomy.
type Class int

// Error classes.
const (
	ClassNone           Class = iota // No error
	ClassTimeout                     // Poll bound exceeded
	ClassProtocol                    // Card-reported failure
	ClassNotInitialized              // Card not ready
	ClassUnresolved                  // Sentinel address
	ClassMisuse                      // Stream discipline violated
	ClassFailed                      // Card unusable until re-init
	ClassOther                       // Transport or host error
)

// String returns a string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassTimeout:
		return "timeout"
	case ClassProtocol:
		return "protocol"
	case ClassNotInitialized:
		return "not-initialized"
	case ClassUnresolved:
		return "unresolved"
	case ClassMisuse:
		return "misuse"
	case ClassFailed:
		return "failed"
	default:
		return "other"
	}
}

// Error returns the sentinel error for the class, or nil when the class has
// no sentinel.
func (c Class) Error() error {
	switch c {
	case ClassNone:
		return nil
	case ClassTimeout:
		return ErrTransportTimeout
	case ClassProtocol:
		return ErrProtocol
	case ClassNotInitialized:
		return ErrNotInitialized
	case ClassUnresolved:
		return ErrFileUnresolved
	case ClassMisuse:
		return ErrStreamMisuse
	case ClassFailed:
		return ErrCardFailed
	default:
		return nil
	}
}

// Classify returns the taxonomy class of err.
func Classify(err error) Class {
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, ErrTransportTimeout):
		return ClassTimeout
	case errors.Is(err, ErrCardFailed), errors.Is(err, ErrUnsupportedCard):
		return ClassFailed
	case errors.Is(err, ErrProtocol), errors.Is(err, ErrEndOfMedia):
		return ClassProtocol
	case errors.Is(err, ErrNotInitialized):
		return ClassNotInitialized
	case errors.Is(err, ErrFileUnresolved):
		return ClassUnresolved
	case errors.Is(err, ErrStreamMisuse):
		return ClassMisuse
	default:
		return ClassOther
	}
}
