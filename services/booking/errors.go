package booking

import "errors"

// ErrSalleNotFound is returned when a room key resolves to no canonical
// room. This is a domain failure, distinct from storage errors.
var ErrSalleNotFound = errors.New("salle not found")
