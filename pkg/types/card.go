package types

// Card is a rendered (art, greeting) pair. It is produced per request and
// owned by the caller.
type Card struct {
	Art      string
	Greeting string

	// Source records which provider produced Art. A remote provider that
	// fell back to its templates reports SourceLocal.
	Source Source
}
