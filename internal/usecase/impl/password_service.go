// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"

	"vault/config"
	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/service"
	"vault/internal/errors"
	"vault/internal/infra/generator"
	"vault/internal/infra/qrcode"
	"vault/internal/usecase"

	"go.uber.org/fx"
)

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	scorer    service.StrengthScorer
	generator service.PasswordGenerator
	qrcode    service.QRCodeService
	hasher    service.PasswordHasher
	defaults  config.GeneratorConfig
	logger    *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	Scorer    service.StrengthScorer
	Generator service.PasswordGenerator
	QRCode    service.QRCodeService
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	defaults := config.Default().Generator
	if params.Config != nil && params.Config.Generator != nil {
		defaults = params.Config.Generator
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &passwordService{
		scorer:    params.Scorer,
		generator: params.Generator,
		qrcode:    params.QRCode,
		hasher:    params.Hasher,
		defaults:  *defaults,
		logger:    logger,
	}
}

func (srv *passwordService) Analyze(ctx context.Context, password string, enhanced bool) (*entity.Analysis, error) {
	result := srv.scorer.Score(password, enhanced)

	srv.log(ctx).Debug("password analyzed",
		slog.Int("length", len([]rune(password))),
		slog.String("label", result.Label.String()),
		slog.Bool("enhanced", enhanced),
	)

	return entity.NewAnalysis(result, len([]rune(password)), enhanced), nil
}

func (srv *passwordService) Generate(ctx context.Context, input *usecase.GenerateInput) (*entity.GeneratedPassword, error) {
	if input == nil {
		input = &usecase.GenerateInput{}
	}

	opts := srv.resolveOptions(input)

	password, err := srv.generator.Generate(opts, input.Enhanced)
	if err != nil {
		if errors.Is(err, generator.ErrEmptyCharset) {
			return nil, domainerrors.ErrEmptyCharset
		}

		return nil, errors.Wrap(err, "generate password")
	}

	length := len([]rune(password))
	poolSize := srv.generator.PoolSize(opts, input.Enhanced)
	analysis := entity.NewAnalysis(srv.scorer.Score(password, input.Enhanced), length, input.Enhanced)

	srv.log(ctx).Info("password generated",
		slog.Int("length", length),
		slog.Int("pool_size", poolSize),
		slog.Int("classes", opts.ClassCount()),
		slog.String("label", analysis.Label.String()),
		slog.Bool("enhanced", input.Enhanced),
	)

	return &entity.GeneratedPassword{
		Password:     password,
		Options:      opts,
		TargetLength: entity.TargetLength(opts.Length, input.Enhanced),
		PoolSize:     poolSize,
		EntropyBits:  entropyBits(length, poolSize),
		Strength:     analysis,
		Enhanced:     input.Enhanced,
	}, nil
}

func (srv *passwordService) Settings(_ context.Context, enhanced bool) *usecase.GeneratorSettings {
	opts := srv.resolveOptions(&usecase.GenerateInput{Enhanced: enhanced})
	lo, hi := entity.Bounds(enhanced)

	return &usecase.GeneratorSettings{
		Defaults:     opts,
		MinLength:    lo,
		MaxLength:    hi,
		TargetLength: entity.TargetLength(opts.Length, enhanced),
		Enhanced:     enhanced,
	}
}

func (srv *passwordService) GenerateQR(ctx context.Context, password string) ([]byte, error) {
	if password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	png, err := srv.qrcode.Encode(password)
	if errors.Is(err, qrcode.ErrContentTooLong) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is too long for a QR code")
	}
	if err != nil {
		srv.log(ctx).Error("QR code encoding failed", slog.Any("error", err))

		return nil, domainerrors.ErrQRCodeFailed
	}

	return png, nil
}

func (srv *passwordService) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("password is required")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("password hashing failed", slog.Any("error", err))

		return "", domainerrors.ErrPasswordHashFailed.WithDetails(errors.Cause(err).Error())
	}

	srv.log(ctx).Debug("password hashed", slog.Int("cost", srv.hasher.Cost()))

	return hash, nil
}

func (srv *passwordService) Verify(_ context.Context, password, hash string) bool {
	return srv.hasher.Check(password, hash)
}

// resolveOptions fills unset toggles from the defaults and clamps the length.
func (srv *passwordService) resolveOptions(input *usecase.GenerateInput) entity.GeneratorOptions {
	length := input.Length
	if length == 0 {
		length = srv.defaults.DefaultLength
	}

	return entity.GeneratorOptions{
		Length:           entity.Clamp(length, input.Enhanced),
		IncludeUppercase: boolOrDefault(input.Uppercase, srv.defaults.Uppercase),
		IncludeLowercase: boolOrDefault(input.Lowercase, srv.defaults.Lowercase),
		IncludeNumbers:   boolOrDefault(input.Numbers, srv.defaults.Numbers),
		IncludeSymbols:   boolOrDefault(input.Symbols, srv.defaults.Symbols),
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}

	return *p
}

// entropyBits estimates length * log2(poolSize), rounded to two decimals.
func entropyBits(length, poolSize int) float64 {
	if length == 0 || poolSize <= 1 {
		return 0
	}

	return math.Round(float64(length)*math.Log2(float64(poolSize))*100) / 100
}
