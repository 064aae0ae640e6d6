package types

import (
	"strings"

	"github.com/arthur-debert/greetings/pkg/errors"
)

// Source selects where card art comes from
type Source int

const (
	SourceUnknown Source = iota
	SourceLocal
	SourceRemote
)

func (s Source) String() string {
	switch s {
	case SourceLocal:
		return "local"
	case SourceRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// MarshalText encodes the source by name
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSource parses a provider source. "ai" is accepted for remote.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return SourceLocal, nil
	case "remote", "ai":
		return SourceRemote, nil
	default:
		return SourceUnknown, errors.Newf(errors.ErrUnknownSource,
			"unknown provider source: %q (available: local, remote)", s).
			WithDetail("source", s)
	}
}
