package script

import "errors"

var (
	// ErrEmptyScript is returned when a document holds no steps
	ErrEmptyScript = errors.New("script has no steps")

	// ErrDecode wraps YAML syntax and type errors
	ErrDecode = errors.New("decode script")

	// ErrUnresolvedRef is returned when a $ref names an id no earlier step bound
	ErrUnresolvedRef = errors.New("unresolved reference")

	// ErrMissingType is returned for a step without a type
	ErrMissingType = errors.New("step type is required")

	// ErrInvalidBinding is returned when `as` is used on a step that creates nothing
	ErrInvalidBinding = errors.New("only ADD_* steps can bind an id")

	// ErrDuplicateBinding is returned when two steps bind the same name
	ErrDuplicateBinding = errors.New("reference already bound")
)
