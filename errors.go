package langdet

import "errors"

var (
	// ErrDuplicateLanguage indicates a profile for a language that is
	// already registered in the model.
	ErrDuplicateLanguage = errors.New("langdet: duplicate language profile")

	// ErrEmptyModel indicates detector construction from a model that has
	// no language profiles merged into it.
	ErrEmptyModel = errors.New("langdet: no language profiles loaded")

	// ErrProfileLoad indicates a profile document could not be read or
	// decoded.
	ErrProfileLoad = errors.New("langdet: failed to load language profile")

	// ErrLanguageCount indicates an attempt to merge more profiles than the
	// builder was sized for.
	ErrLanguageCount = errors.New("langdet: language count exceeded")
)
