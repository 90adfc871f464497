package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"vault/config"
	"vault/internal/delivery/cli"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/service"
	"vault/internal/infra/auth"
	"vault/internal/infra/generator"
	logs "vault/internal/infra/log"
	"vault/internal/infra/qrcode"
	"vault/internal/infra/strength"
	"vault/internal/usecase"
	"vault/internal/usecase/impl"
	"vault/internal/util"

	"github.com/pkg/errors"
)

type app struct {
	uc  usecase.PasswordUsecase
	out io.Writer
}

type generateRequest struct {
	length    int
	uppercase bool
	lowercase bool
	numbers   bool
	symbols   bool
	enhanced  bool
	qrPath    string
}

// newApp wires the use case the same way cmd/vault does, falling back to the
// built-in defaults when no config file is found.
func newApp(out io.Writer) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		cfg = config.Default()
		cfg.Env.Log.Level = "warn"
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	return newAppWithGenerator(cfg, logger, generator.NewPasswordGenerator(), out), nil
}

func newAppWithGenerator(cfg *config.Config, logger *slog.Logger, gen service.PasswordGenerator, out io.Writer) *app {
	uc := impl.NewPasswordService(impl.PasswordServiceParams{
		Scorer:    strength.NewScorer(),
		Generator: gen,
		QRCode:    qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel),
		Hasher:    auth.NewBcryptHasher(cfg),
		Config:    cfg,
		Logger:    logger,
	})

	return &app{uc: uc, out: out}
}

func (a *app) analyze(ctx context.Context, password string, enhanced bool) error {
	analysis, err := a.uc.Analyze(ctx, password, enhanced)
	if err != nil {
		return err
	}

	cli.WriteAnalysis(a.out, analysis)

	return nil
}

func (a *app) generate(ctx context.Context, req generateRequest) error {
	generated, err := a.uc.Generate(ctx, &usecase.GenerateInput{
		Length:    req.length,
		Uppercase: &req.uppercase,
		Lowercase: &req.lowercase,
		Numbers:   &req.numbers,
		Symbols:   &req.symbols,
		Enhanced:  req.enhanced,
	})
	if errors.Is(err, domainerrors.ErrEmptyCharset) {
		return errors.New(domainerrors.ErrEmptyCharset.Message())
	}
	if err != nil {
		return err
	}

	cli.WriteGenerated(a.out, generated)

	if req.qrPath == "" {
		return nil
	}

	png, err := a.uc.GenerateQR(ctx, generated.Password)
	if err != nil {
		return err
	}

	if err := os.WriteFile(req.qrPath, png, 0o600); err != nil {
		return errors.Wrapf(err, "write QR code to %s", req.qrPath)
	}

	fmt.Fprintf(a.out, "QR code:  %s (%s, sha256 %s)\n",
		req.qrPath, util.FormatBytes(int64(len(png))), util.Checksum(png, 12))

	return nil
}

func (a *app) interactive(ctx context.Context) error {
	session := cli.NewSession(cli.NewSurveyDriver(a.out), a.uc)

	return session.Run(ctx)
}
