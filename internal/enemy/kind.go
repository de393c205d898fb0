package enemy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names outside Kinds()
var ErrUnknownKind = errors.New("unknown enemy kind")

// Kind tags an entity with its variant
type Kind uint8

const (
	Worm Kind = iota
	Ghost
	Spider
)

var kindNames = [...]string{"worm", "ghost", "spider"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds lists every variant in declaration order
func Kinds() []Kind {
	return []Kind{Worm, Ghost, Spider}
}

// ParseKind maps a case-insensitive variant name to its Kind
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == normalized {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
