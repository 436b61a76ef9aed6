package logkit

import (
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var (
	transportValidator *validator.Validate
	validateOnce       sync.Once
)

func validateTransportConfig(cfg *TransportConfig) error {
	const op smerrors.Op = "logkit.validateTransportConfig"
	if cfg == nil {
		return smerrors.New(op).Msg(errMsgNilTransportConfig)
	}

	validateOnce.Do(func() {
		transportValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := transportValidator.Struct(cfg); err != nil {
		return smerrors.New(op).Err(err).Msg(errMsgTransportConfigInvalid)
	}

	return nil
}
