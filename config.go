package logkit

import (
	"fmt"

	smerrors "github.com/Station-Manager/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config reconfigures a Logger through SetConfig. Zero fields leave the
// current setting alone.
type Config struct {
	// MinLevel and MaxLevel take a rank or a level name.
	MinLevel      any    `yaml:"minLevel"`
	MaxLevel      any    `yaml:"maxLevel"`
	DefaultDomain string `yaml:"defaultDomain"`
	// Transports, when non-nil, replaces the whole transport list.
	Transports []TransportConfig `yaml:"transports"`
}

// ParseConfig decodes a YAML logger configuration.
//
//	minLevel: trace
//	defaultDomain: api
//	transports:
//	  - type: console
//	    minLevel: info
//	    color: true
func ParseConfig(data []byte) (Config, error) {
	const op smerrors.Op = "logkit.ParseConfig"
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, smerrors.New(op).Err(err).Msg(errMsgConfigDecode)
	}
	return cfg, nil
}

// SetConfig applies cfg. Unresolvable levels are ignored. When
// cfg.Transports is non-nil every attached transport is detached first,
// then each entry is built and attached in order; entries that fail to
// validate, resolve or build are skipped without affecting the others.
// The returned error lists what was skipped or failed to close; the
// configuration is applied either way.
func (l *Logger) SetConfig(cfg Config) error {
	const op smerrors.Op = "logkit.SetConfig"

	if rank, _, ok := Levels.Resolve(cfg.MinLevel); ok {
		l.minLevel.Store(int32(rank))
	}
	if rank, _, ok := Levels.Resolve(cfg.MaxLevel); ok {
		l.maxLevel.Store(int32(rank))
	}
	if cfg.DefaultDomain != emptyString {
		l.defaultDomain.Store(cfg.DefaultDomain)
	}

	if cfg.Transports == nil {
		return nil
	}

	err := l.RemoveAllTransports()
	for i, tc := range cfg.Transports {
		t, buildErr := l.buildTransport(tc.Type, tc)
		if buildErr != nil {
			l.diag.Warn().
				Err(buildErr).
				Int("index", i).
				Str("type", tc.Type).
				Msg("transport skipped")
			err = multierr.Append(err, smerrors.New(op).Err(buildErr).
				Msg(fmt.Sprintf("%s index=%d type=%q", errMsgTransportSkipped, i, tc.Type)))
			continue
		}
		l.AddTransport(t)
	}
	return err
}

func (l *Logger) buildTransport(name string, cfg TransportConfig) (Transport, error) {
	const op smerrors.Op = "logkit.buildTransport"

	cfg.Type = name
	if err := validateTransportConfig(&cfg); err != nil {
		return nil, err
	}

	factory, err := l.transportRegistry().Lookup(name)
	if err != nil {
		return nil, err
	}

	t, err := factory(l, cfg)
	if err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgTransportFactory)
	}
	if t == nil {
		return nil, smerrors.New(op).Msg(errMsgTransportFactory)
	}
	return t, nil
}
