package usecase

import "errors"

// Terminal errors at the call boundary. Retrying any of these without
// changing the input would return the same answer.
var (
	ErrCareerNotFound    = errors.New("Career not found")
	ErrEmptySkillProfile = errors.New("Skill profile empty")
	ErrUnscorable        = errors.New("Career has no scorable requirements")
	ErrInvalidInput      = errors.New("Invalid input")
	ErrInternal          = errors.New("Internal error")
)
