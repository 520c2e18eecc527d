// Defines the RequestSet consumed by the scheduling policies: an ordered
// sequence of track requests plus the starting head position, validated
// once at construction.

package sim

import (
	"errors"
	"fmt"
)

// DefaultMaxRequests is the capacity limit applied when the caller does
// not configure one.
const DefaultMaxRequests = 100

var (
	// ErrEmptyRequestSet is returned when a request set has no tracks.
	ErrEmptyRequestSet = errors.New("request set is empty")
	// ErrCapacityExceeded is returned when a request set holds more
	// tracks than the configured maximum.
	ErrCapacityExceeded = errors.New("maximum requests exceeded")
)

// RequestSet is an immutable ordered sequence of integer track requests
// plus the initial head position. Arrival order is meaningful (FCFS
// visits it literally); duplicates are permitted and treated as
// independent visits.
type RequestSet struct {
	tracks []int
	head   int
}

// NewRequestSet validates and copies the given tracks. maxRequests
// bounds the sequence length; a non-positive value applies
// DefaultMaxRequests. The input slice is copied, so later caller
// mutations do not reach the schedulers.
func NewRequestSet(head int, tracks []int, maxRequests int) (*RequestSet, error) {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if len(tracks) == 0 {
		return nil, ErrEmptyRequestSet
	}
	if len(tracks) > maxRequests {
		return nil, fmt.Errorf("%w: %d requests over limit %d", ErrCapacityExceeded, len(tracks), maxRequests)
	}
	rs := &RequestSet{
		tracks: make([]int, len(tracks)),
		head:   head,
	}
	copy(rs.tracks, tracks)
	return rs, nil
}

// Head returns the initial head position.
func (rs *RequestSet) Head() int {
	return rs.head
}

// Len returns the number of track requests.
func (rs *RequestSet) Len() int {
	return len(rs.tracks)
}

// Tracks returns a copy of the track sequence in arrival order.
func (rs *RequestSet) Tracks() []int {
	out := make([]int, len(rs.tracks))
	copy(out, rs.tracks)
	return out
}
