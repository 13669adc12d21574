package models

type InputKind int

const (
	InputNone InputKind = iota
	InputSearch
	InputTerm
	InputDefinition
	InputCategory
	InputExample
	InputEditID
	InputDeleteID
)

// PendingInput remembers what the next plain-text message from a user means.
type PendingInput struct {
	Kind  InputKind
	Draft Concept
}
