package ontology

import (
	"errors"

	"github.com/owlkit/owlkit/inference"
)

var (
	ErrUnknownRestrictionType = errors.New("unknown restriction type")
	ErrInvalidCardinality     = errors.New("cardinality must be a non-negative integer")
	ErrUnknownRelation        = errors.New("unknown relation")
	ErrUnknownExpression      = errors.New("unknown class expression")
	ErrEmptyList              = errors.New("list must not be empty")
	ErrShortChain             = errors.New("property chain needs at least two properties")
	ErrUnknownMetadata        = errors.New("unknown metadata field")
	ErrUnknownKind            = errors.New("unknown entity kind")
	ErrUnknownProfile         = inference.ErrUnknownProfile
)
