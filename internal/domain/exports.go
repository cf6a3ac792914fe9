package domain

import (
	interfaces "stegcalc/internal/domain/interfaces"
	types "stegcalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Mode           = types.Mode
	Fingerprint    = types.Fingerprint
	Image          = types.Image
	EncryptRequest = types.EncryptRequest
	DecryptRequest = types.DecryptRequest
	ExchangeResult = types.ExchangeResult
)

// Mode values.
const (
	ModeCalculator = types.ModeCalculator
	ModeCovertTool = types.ModeCovertTool
)

// ErrMissingFields is returned when a request lacks a mandatory field.
var ErrMissingFields = types.ErrMissingFields

// Result constructors.
var (
	Success = types.Success
	Failure = types.Failure
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ExchangeClient  = interfaces.ExchangeClient
	ExchangeService = interfaces.ExchangeService
	Downloader      = interfaces.Downloader
	Clipboard       = interfaces.Clipboard
	Resetter        = interfaces.Resetter
)
