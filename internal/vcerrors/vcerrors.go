package vcerrors

import "errors"

var (
	// version registry configuration
	ErrNoDefaultVersion       = errors.New("no version with status Active or Current is configured")
	ErrMultipleDefaultVersion = errors.New("more than one version with status Active or Current is configured")
	ErrVersionNameEmpty       = errors.New("version name is not set")
	ErrSemanticVersionEmpty   = errors.New("semantic version is not set")
	ErrSemanticVersionInvalid = errors.New("semantic version must have 1 to 3 numeric dot-separated components")

	// contract synthesis
	ErrShapeSampleIsNil = errors.New("shape sample value is nil")
)
