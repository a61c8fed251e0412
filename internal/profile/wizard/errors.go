package wizard

import "errors"

// Validation errors shown by the form-mode wizard.
var (
	errNameTooShort     = errors.New("name must be at least 2 characters")
	errNameTooLong      = errors.New("name must be 20 characters or less")
	errTooFewPhotos     = errors.New("add at least 2 photos")
	errTooManyPhotos    = errors.New("at most 6 photos are allowed")
	errBioTooShort      = errors.New("tell us a bit more (at least 20 characters)")
	errBioTooLong       = errors.New("bio must be 500 characters or less")
	errTooFewInterests  = errors.New("pick at least 3 interests")
	errTooManyInterests = errors.New("pick at most 10 interests")
)
