package document

import "fmt"

// ErrSessionNotFound indicates an unknown or expired session ID.
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// KeyError indicates a reorder or toggle referenced an entry key that does
// not exist in the target list. Editor-level errors are programming errors
// on the client side; they surface as guarded failures, never panics.
type KeyError struct {
	List string
	Key  string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("no entry %q in list %s", e.Key, e.List)
}

// ListError indicates an unknown list name was addressed.
type ListError struct {
	List string
}

func (e *ListError) Error() string {
	return fmt.Sprintf("unknown list: %s", e.List)
}

// PathError indicates a malformed or out-of-range field path in an edit.
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid field path %q: %s", e.Path, e.Message)
}
