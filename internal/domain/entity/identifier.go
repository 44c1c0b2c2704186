package entity

import "github.com/google/uuid"

// MaxIdentifierSourceLength is the width of the identifiers.source column.
const MaxIdentifierSourceLength = 20

// IdentifierRef is an external (source, value) pair as it appears in a payload, before resolution.
type IdentifierRef struct {
	Source string
	Value  int64
}

// Identifier is a globally unique (source, value) pair pointing into an external catalog.
// The same row is shared by every user referencing the pair; ownership lives on the content it is linked to.
type Identifier struct {
	ID     uuid.UUID
	Source string
	Value  int64
}

// Ref returns the payload form of the identifier.
func (i *Identifier) Ref() IdentifierRef {
	return IdentifierRef{Source: i.Source, Value: i.Value}
}
