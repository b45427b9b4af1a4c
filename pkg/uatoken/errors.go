package uatoken

import "errors"

var (
	ErrRulesDecode    = errors.New("failed to decode token rules")
	ErrInvalidRules   = errors.New("invalid token rules")
	ErrSnapshotDecode = errors.New("failed to decode tokens snapshot")
)
