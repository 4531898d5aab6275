package ports

import (
	"github.com/bft-labs/memload/internal/domain"
	"github.com/bft-labs/memload/pkg/log"
)

// Logger is the structured logging port.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors re-exported so core packages depend only on ports.
var (
	String = log.String
	Int    = log.Int
	Bool   = log.Bool
	Bytes  = log.Bytes
	Err    = log.Err
)

// DomainField creates the field carrying a domain id.
func DomainField(id domain.DomainID) Field {
	return log.Domain(id)
}
