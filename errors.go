package soup

import "errors"

// Errors returned by tree navigation and mutation.
var (
	ErrNotInTree           = errors.New("soup: element is not part of a tree")
	ErrNotChild            = errors.New("soup: node is not a child of this element")
	ErrIndexOutOfRange     = errors.New("soup: index out of range")
	ErrInsertSelf          = errors.New("soup: cannot insert an element into itself")
	ErrInsertAncestor      = errors.New("soup: cannot insert an element into its own descendant")
	ErrReplaceWithAncestor = errors.New("soup: cannot replace an element with its ancestor")
	ErrNoReplacement       = errors.New("soup: no replacement given")
	ErrNilNode             = errors.New("soup: nil node")
	ErrNotContainer        = errors.New("soup: node cannot contain children")
	ErrDecomposed          = errors.New("soup: element has been decomposed")
)
