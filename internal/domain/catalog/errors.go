package catalog

import "errors"

var (
	ErrClassNotFound = errors.New("class not found")
	ErrSlotNotFound  = errors.New("time slot not found")
)
