package cli

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"vault/config"
	"vault/internal/infra/auth"
	"vault/internal/infra/generator"
	"vault/internal/infra/qrcode"
	"vault/internal/infra/strength"
	"vault/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeDriver replays scripted answers and records everything shown.
type fakeDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool
	infos     []string
}

func (d *fakeDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", ErrAborted
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]

	return next, nil
}

func (d *fakeDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if len(d.passwords) == 0 {
		return "", ErrAborted
	}
	next := d.passwords[0]
	d.passwords = d.passwords[1:]

	return next, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return cfg.Default, nil
	}
	next := d.confirms[0]
	d.confirms = d.confirms[1:]

	return next, nil
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)

	return nil
}

func (d *fakeDriver) output() string {
	return strings.Join(d.infos, "\n")
}

func newTestSession(driver PromptDriver) *Session {
	cfg := config.Default()
	uc := impl.NewPasswordService(impl.PasswordServiceParams{
		Scorer:    strength.NewScorer(),
		Generator: generator.New(rand.New(rand.NewPCG(1, 2))),
		QRCode:    qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel),
		Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return NewSession(driver, uc)
}

func TestSession_Analyze(t *testing.T) {
	driver := &fakeDriver{
		inputs:    []string{"analyze", "quit"},
		passwords: []string{"abcdefgh"},
	}
	s := newTestSession(driver)

	require.NoError(t, s.Run(context.Background()))

	out := driver.output()
	assert.Contains(t, out, "Strength: Medium (50/100) [yellow]")
	assert.Contains(t, out, "  - Include uppercase letters")
	assert.False(t, s.Enhanced())
}

func TestSession_Generate(t *testing.T) {
	driver := &fakeDriver{
		inputs:   []string{"generate", "10"},
		confirms: []bool{true, true, true, false},
	}
	s := newTestSession(driver)

	require.NoError(t, s.Run(context.Background()))

	out := driver.output()
	assert.Contains(t, out, "Length:   10 (target 10)")
	assert.Contains(t, out, "Classes:  upper, lower, numbers")
	assert.Contains(t, out, "Pool:     62 characters")
}

func TestSession_GenerateEmptyCharset(t *testing.T) {
	driver := &fakeDriver{
		inputs:   []string{"generate", "12"},
		confirms: []bool{false, false, false, false},
	}
	s := newTestSession(driver)

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, driver.output(), "Please select at least one character type")
	assert.NotContains(t, driver.output(), "Password:")
}

func TestSession_UnlockSequence(t *testing.T) {
	driver := &fakeDriver{
		inputs:    append(append([]string{}, UnlockSequence...), "analyze"),
		passwords: []string{"Abcdefg1!"},
	}
	s := newTestSession(driver)

	require.NoError(t, s.Run(context.Background()))

	assert.True(t, s.Enhanced())
	assert.Contains(t, driver.infos, EliteBanner)
	assert.Contains(t, driver.output(), "Strength: Unbreakable (100/100) [purple]")
	assert.NotContains(t, driver.output(), "Unknown command")
}

func TestSession_UnlockedGenerateUsesEnhancedFloor(t *testing.T) {
	driver := &fakeDriver{
		inputs:   []string{strings.Join(UnlockSequence, " "), "generate", "8"},
		confirms: []bool{false, false, false, false},
	}
	s := newTestSession(driver)

	require.NoError(t, s.Run(context.Background()))

	out := driver.output()
	assert.Contains(t, out, EliteBanner)
	assert.Contains(t, out, "Length:   16 (target 16)")
	assert.Contains(t, out, "Classes:  extended")
}

func TestSession_UnknownCommand(t *testing.T) {
	driver := &fakeDriver{inputs: []string{"dance", "help"}}
	s := newTestSession(driver)

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, driver.output(), `Unknown command "dance"`)
	assert.Contains(t, driver.output(), "generate   generate a password")
}

func TestSession_Options(t *testing.T) {
	driver := &fakeDriver{inputs: []string{"options"}}
	s := newTestSession(driver)

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, driver.output(), "Length 8-32 (default 12, target 12), classes: upper, lower, numbers, symbols")
}
