package cli

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	domainerrors "vault/internal/domain/errors"
	"vault/internal/errors"
	"vault/internal/usecase"
)

const sessionHelp = `Commands:
  analyze    score a password
  generate   generate a password
  options    show generator defaults and bounds
  help       show this help
  quit       leave the session`

// Session is an interactive prompt loop over the password use cases.
// Enhanced mode is local to the session and starts disabled.
type Session struct {
	driver   PromptDriver
	uc       usecase.PasswordUsecase
	detector *SequenceDetector
	enhanced bool
}

// NewSession creates a session reading through driver.
func NewSession(driver PromptDriver, uc usecase.PasswordUsecase) *Session {
	return &Session{
		driver:   driver,
		uc:       uc,
		detector: NewSequenceDetector(),
	}
}

// Enhanced reports whether the session has been unlocked.
func (s *Session) Enhanced() bool {
	return s.enhanced
}

// Run loops until the user quits, aborts, or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	if err := s.driver.Info(ctx, "Type 'help' for commands."); err != nil {
		return err
	}

	for {
		line, err := s.driver.Input(ctx, InputConfig{Message: s.promptLabel()})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.handle(ctx, line)
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (s *Session) handle(ctx context.Context, line string) (bool, error) {
	if s.detector.FeedLine(line) && !s.enhanced {
		s.enhanced = true

		return false, s.driver.Info(ctx, EliteBanner)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "analyze":
		return false, s.analyze(ctx)
	case "generate", "g":
		return false, s.generate(ctx)
	case "options", "o":
		return false, s.options(ctx)
	case "help", "h", "?":
		return false, s.driver.Info(ctx, sessionHelp)
	case "quit", "q", "exit":
		return true, nil
	default:
		if s.detector.IsToken(cmd) {
			return false, nil
		}

		return false, s.driver.Info(ctx, fmt.Sprintf("Unknown command %q. Type 'help' for commands.", cmd))
	}
}

func (s *Session) analyze(ctx context.Context) error {
	password, err := s.driver.Password(ctx, InputConfig{Message: "Password to analyze:"})
	if err != nil {
		return err
	}

	analysis, err := s.uc.Analyze(ctx, password, s.enhanced)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	WriteAnalysis(&buf, analysis)

	return s.driver.Info(ctx, strings.TrimRight(buf.String(), "\n"))
}

func (s *Session) generate(ctx context.Context) error {
	settings := s.uc.Settings(ctx, s.enhanced)

	rawLength, err := s.driver.Input(ctx, InputConfig{
		Message:   fmt.Sprintf("Length (%d-%d):", settings.MinLength, settings.MaxLength),
		Default:   strconv.Itoa(settings.Defaults.Length),
		Validator: validateLength,
	})
	if err != nil {
		return err
	}
	length, err := strconv.Atoi(strings.TrimSpace(rawLength))
	if err != nil {
		return errors.Wrap(err, "parse length")
	}

	input := &usecase.GenerateInput{Length: length, Enhanced: s.enhanced}
	toggles := []struct {
		message string
		def     bool
		dst     **bool
	}{
		{"Include uppercase letters?", settings.Defaults.IncludeUppercase, &input.Uppercase},
		{"Include lowercase letters?", settings.Defaults.IncludeLowercase, &input.Lowercase},
		{"Include numbers?", settings.Defaults.IncludeNumbers, &input.Numbers},
		{"Include symbols?", settings.Defaults.IncludeSymbols, &input.Symbols},
	}
	for _, toggle := range toggles {
		on, err := s.driver.Confirm(ctx, ConfirmConfig{Message: toggle.message, Default: toggle.def})
		if err != nil {
			return err
		}
		*toggle.dst = &on
	}

	generated, err := s.uc.Generate(ctx, input)
	if errors.Is(err, domainerrors.ErrEmptyCharset) {
		return s.driver.Info(ctx, domainerrors.ErrEmptyCharset.Message())
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	WriteGenerated(&buf, generated)

	return s.driver.Info(ctx, strings.TrimRight(buf.String(), "\n"))
}

func (s *Session) options(ctx context.Context) error {
	settings := s.uc.Settings(ctx, s.enhanced)

	return s.driver.Info(ctx, fmt.Sprintf("Length %d-%d (default %d, target %d), classes: %s",
		settings.MinLength, settings.MaxLength, settings.Defaults.Length, settings.TargetLength,
		describeClasses(settings.Defaults, settings.Enhanced)))
}

func (s *Session) promptLabel() string {
	if s.enhanced {
		return "vault [elite]>"
	}

	return "vault>"
}

func validateLength(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return errors.New("length must be a whole number")
	}
	if n < 0 {
		return errors.New("length must not be negative")
	}

	return nil
}
