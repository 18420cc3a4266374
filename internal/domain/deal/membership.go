package deal

import "errors"

var (
	ErrAlreadyMember = errors.New("user already joined this deal")
	ErrNotMember     = errors.New("user is not a member of this deal")
)
