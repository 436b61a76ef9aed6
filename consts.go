package logkit

import "time"

const (
	// DefaultMinLevel and DefaultMaxLevel bound a fresh Logger.
	DefaultMinLevel = LevelInfo
	DefaultMaxLevel = LevelFatal

	// DefaultDomain is used when a call names no domain.
	DefaultDomain = "no-domain"

	defaultShutdownTimeout = 2 * time.Second
	emptyString            = ""
)

const (
	errMsgNilTransportConfig     = "Transport config is nil."
	errMsgTransportConfigInvalid = "Transport configuration is invalid."
	errMsgTransportSkipped       = "Transport skipped."
	errMsgTransportFactory       = "Transport factory failed."
	errMsgConfigDecode           = "Logger configuration could not be decoded."
	errMsgLogFileName            = "Log file name could not be determined."
)
