package scene

import "github.com/katalvlaran/tilewalk/search"

// ErrSameMarkers is returned when a command would put start and goal on the
// same cell. It is the search package's sentinel so errors.Is matches either.
var ErrSameMarkers = search.ErrSameMarkers
