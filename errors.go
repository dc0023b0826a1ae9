package rotlog

import "errors"

var (
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrInvalidConfig   = errors.New("invalid logger configuration")
	ErrPermission      = errors.New("insufficient permissions for log destination")
	ErrRotate          = errors.New("log rotation failed")
)
