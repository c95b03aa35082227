package pattern

import "errors"

// ErrNoRoot is returned by Build when the root id it is given does not name
// a node of the graph under construction.
var ErrNoRoot = errors.New("pattern: graph has no root")

// ErrBadFanin is returned by a Builder method referencing a fanin node id
// that does not exist in the graph under construction.
var ErrBadFanin = errors.New("pattern: fanin references an unknown node")

// ErrForeignGraph is returned when Match is given a subject node id that
// does not belong to the subject.Graph it was asked to search.
var ErrForeignGraph = errors.New("pattern: subject node does not belong to the given graph")
