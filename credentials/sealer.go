package credentials

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/credseal/encryption"
	"github.com/kbukum/credseal/errors"
	"github.com/kbukum/credseal/logger"
	"github.com/kbukum/credseal/observability"
	"github.com/kbukum/credseal/resilience"
	"github.com/kbukum/credseal/util"
	"github.com/kbukum/credseal/validation"
)

const componentName = "credentials"

// Sealer encrypts the password of outgoing credential payloads.
// It is safe for concurrent use.
type Sealer struct {
	enc       encryption.Encryptor
	algorithm encryption.Algorithm
	metrics   *observability.Metrics
	retry     *resilience.Policy
	log       *logger.Logger
}

// SealerOption configures a Sealer.
type SealerOption func(*Sealer)

// WithMetrics records operation metrics on m.
func WithMetrics(m *observability.Metrics) SealerOption {
	return func(s *Sealer) { s.metrics = m }
}

// WithLogger replaces the component logger.
func WithLogger(l *logger.Logger) SealerOption {
	return func(s *Sealer) { s.log = l.WithComponent(componentName) }
}

// WithRetry retries encryption failures that p considers transient.
func WithRetry(p resilience.Policy) SealerOption {
	return func(s *Sealer) { s.retry = &p }
}

// WithAlgorithmLabel sets the algorithm reported on spans and log lines.
func WithAlgorithmLabel(alg encryption.Algorithm) SealerOption {
	return func(s *Sealer) { s.algorithm = alg }
}

// NewSealer creates a Sealer around enc.
func NewSealer(enc encryption.Encryptor, opts ...SealerOption) (*Sealer, error) {
	if enc == nil {
		return nil, errors.Misconfigured("encryption", encryption.ErrMissingKey)
	}
	s := &Sealer{
		enc:       enc,
		algorithm: encryption.AlgorithmAESCBCSalted,
		log:       logger.Get(componentName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewSealerFromConfig builds the Encryptor described by cfg and wraps it.
func NewSealerFromConfig(cfg encryption.Config, opts ...SealerOption) (*Sealer, error) {
	cfg.ApplyDefaults()
	enc, err := encryption.NewFromConfig(cfg)
	if err != nil {
		return nil, errors.Misconfigured("encryption", err)
	}
	return NewSealer(enc, append([]SealerOption{WithAlgorithmLabel(encryption.Algorithm(cfg.Algorithm))}, opts...)...)
}

// SealPassword encrypts a bare password.
func (s *Sealer) SealPassword(ctx context.Context, plaintext string) (sealed string, err error) {
	ctx, op, log := s.begin(ctx, "seal_password")
	defer func() { s.finish(ctx, op, log, err) }()

	return s.encrypt(ctx, log, plaintext)
}

// SealLogin returns a copy of req whose Password is encrypted.
func (s *Sealer) SealLogin(ctx context.Context, req LoginRequest) (sealed LoginRequest, err error) {
	ctx, op, log := s.begin(ctx, "seal_login")
	defer func() { s.finish(ctx, op, log, err) }()

	req.Email = util.SanitizeString(req.Email)
	log = log.WithFields(logger.Fields(logger.FieldEmail, util.Mask(req.Email)))
	if err = validation.Validate(req); err != nil {
		return LoginRequest{}, err
	}

	if req.Password, err = s.encrypt(ctx, log, req.Password); err != nil {
		return LoginRequest{}, err
	}
	return req, nil
}

// SealRegistration returns a copy of reg whose Password is encrypted.
func (s *Sealer) SealRegistration(ctx context.Context, reg Registration) (sealed Registration, err error) {
	ctx, op, log := s.begin(ctx, "seal_registration")
	defer func() { s.finish(ctx, op, log, err) }()

	reg.FullName = util.SanitizeString(reg.FullName)
	reg.Email = util.SanitizeString(reg.Email)
	reg.Phone = util.SanitizeString(reg.Phone)
	log = log.WithFields(logger.Fields(logger.FieldEmail, util.Mask(reg.Email)))
	if err = validation.Validate(reg); err != nil {
		return Registration{}, err
	}

	if reg.Password, err = s.encrypt(ctx, log, reg.Password); err != nil {
		return Registration{}, err
	}
	return reg, nil
}

// RevealPassword decrypts a sealed password. With the default algorithm a
// wrong key yields an empty or garbled string rather than an error.
func (s *Sealer) RevealPassword(ctx context.Context, sealed string) (plain string, err error) {
	ctx, op, log := s.begin(ctx, "reveal_password")
	defer func() { s.finish(ctx, op, log, err) }()

	plain, err = s.enc.Decrypt(sealed)
	switch {
	case err == nil:
		return plain, nil
	case stderrors.Is(err, encryption.ErrMalformedCiphertext):
		return "", errors.InvalidFormat("password", "base64 sealed password").WithCause(err)
	default:
		return "", errors.EncryptionFailed("decrypt", err)
	}
}

// BuildLoginEnvelope seals req and wraps it as a POST /login request.
func (s *Sealer) BuildLoginEnvelope(ctx context.Context, req LoginRequest) (Envelope, error) {
	sealed, err := s.SealLogin(ctx, req)
	if err != nil {
		return Envelope{}, err
	}
	env, err := newEnvelope(LoginPath, sealed)
	if err != nil {
		return Envelope{}, errors.Internal(err)
	}
	return env, nil
}

// BuildRegistrationEnvelope seals reg and wraps it as a POST /register request.
func (s *Sealer) BuildRegistrationEnvelope(ctx context.Context, reg Registration) (Envelope, error) {
	sealed, err := s.SealRegistration(ctx, reg)
	if err != nil {
		return Envelope{}, err
	}
	env, err := newEnvelope(RegisterPath, sealed)
	if err != nil {
		return Envelope{}, errors.Internal(err)
	}
	return env, nil
}

func (s *Sealer) encrypt(ctx context.Context, log *logger.Logger, plaintext string) (string, error) {
	attempt := func() (string, error) {
		out, err := s.enc.Encrypt(plaintext)
		if err != nil {
			return "", errors.EncryptionFailed("encrypt", err)
		}
		return out, nil
	}
	if s.retry == nil {
		return attempt()
	}

	p := *s.retry
	next := p.OnRetry
	p.OnRetry = func(n int, err error, wait time.Duration) {
		log.WithError(err).Warn("retrying encryption", logger.Fields("attempt", n, "wait", wait.String()))
		if next != nil {
			next(n, err, wait)
		}
	}
	return resilience.Retry(ctx, p, attempt)
}

// begin attaches a request ID (reusing one already in ctx), starts the
// operation span and returns a logger scoped to both.
func (s *Sealer) begin(ctx context.Context, name string) (context.Context, *observability.Operation, *logger.Logger) {
	id := logger.RequestIDFromContext(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = logger.ContextWithRequestID(ctx, id)
	}

	ctx, op := observability.StartOperation(ctx, componentName, name, s.metrics,
		attribute.String(observability.AttrRequestID, id),
		attribute.String(observability.AttrAlgorithm, string(s.algorithm)),
	)

	log := s.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldAlgorithm, string(s.algorithm),
	))
	return ctx, op, log
}

func (s *Sealer) finish(ctx context.Context, op *observability.Operation, log *logger.Logger, err error) {
	op.End(ctx, err)

	fields := logger.DurationFields(op.Name, op.Duration())
	if err != nil {
		fields[logger.FieldStatus] = observability.StatusError
		log.WithError(err).Debug("credential operation failed", fields)
		return
	}
	fields[logger.FieldStatus] = observability.StatusOK
	log.Debug("credential operation completed", fields)
}
