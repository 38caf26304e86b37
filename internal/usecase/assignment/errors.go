package assignment

import "errors"

// Input errors (hard failures of a generation pass)
var (
	ErrInvalidGroupBounds         = errors.New("group size bounds must satisfy 1 <= min <= ideal <= max")
	ErrInvalidRounds              = errors.New("number of rounds must be at least 1")
	ErrInvalidDiscussionsPerRound = errors.New("discussions per round must be at least 1")
	ErrNoEligibleParticipants     = errors.New("no eligible participants")
	ErrNoEligibleTopics           = errors.New("no eligible topics")
	ErrMissingEvent               = errors.New("event configuration is required")
)
