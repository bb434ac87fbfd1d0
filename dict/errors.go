package dict

import "github.com/pkg/errors"

// ErrEmptyDictionary is returned by MinEntry and MaxEntry when the
// dictionary holds no entries. It is wrapped with a stack trace; test for it
// with errors.Is.
var ErrEmptyDictionary = errors.New("dict: empty dictionary")
