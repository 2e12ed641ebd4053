package entity

import "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

var (
	ErrStopNotFound      = errors.New("stop not found")
	ErrStopIndexRange    = errors.New("stop index out of range")
	ErrInvalidJourney    = errors.New("invalid journey")
	ErrUnknownStopFormat = errors.New("unknown stop format")
)
