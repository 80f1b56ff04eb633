package locale

import "errors"

var (
	ErrEmptyLocale       = errors.New("locale: locale cannot be empty")
	ErrInvalidLocale     = errors.New("locale: invalid locale tag")
	ErrUnsupportedLocale = errors.New("locale: locale is not supported")
	ErrInvalidConfig     = errors.New("locale: invalid configuration")
)
