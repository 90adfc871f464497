package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - analyze:     Score a password
// - generate:    Generate a password
// - interactive: Prompt-driven session

func main() {
	// Subcommand definitions
	analyzeCmd := flag.NewFlagSet("analyze", flag.ExitOnError)
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	interactiveCmd := flag.NewFlagSet("interactive", flag.ExitOnError)

	// analyze parameters
	analyzeEnhanced := analyzeCmd.Bool("enhanced", false, "Score in enhanced mode")

	// generate parameters
	generateLength := generateCmd.Int("length", 0, "Password length (0 uses the configured default)")
	generateNoUpper := generateCmd.Bool("no-upper", false, "Exclude uppercase letters")
	generateNoLower := generateCmd.Bool("no-lower", false, "Exclude lowercase letters")
	generateNoNumbers := generateCmd.Bool("no-numbers", false, "Exclude numbers")
	generateNoSymbols := generateCmd.Bool("no-symbols", false, "Exclude symbols")
	generateEnhanced := generateCmd.Bool("enhanced", false, "Generate in enhanced mode")
	generateQR := generateCmd.String("qr", "", "Also write the password as a PNG QR code to this file")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := vaultFlags{
		Analyze: analyzeFlags{
			cmd:      analyzeCmd,
			enhanced: analyzeEnhanced,
		},
		Generate: generateFlags{
			cmd:       generateCmd,
			length:    generateLength,
			noUpper:   generateNoUpper,
			noLower:   generateNoLower,
			noNumbers: generateNoNumbers,
			noSymbols: generateNoSymbols,
			enhanced:  generateEnhanced,
			qr:        generateQR,
		},
		Interactive: interactiveFlags{
			cmd: interactiveCmd,
		},
	}

	if err := runSubcommand(ctx, &flags, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type vaultFlags struct {
	Analyze     analyzeFlags
	Generate    generateFlags
	Interactive interactiveFlags
}

type analyzeFlags struct {
	cmd      *flag.FlagSet
	enhanced *bool
}

type generateFlags struct {
	cmd       *flag.FlagSet
	length    *int
	noUpper   *bool
	noLower   *bool
	noNumbers *bool
	noSymbols *bool
	enhanced  *bool
	qr        *string
}

type interactiveFlags struct {
	cmd *flag.FlagSet
}

func runSubcommand(ctx context.Context, flags *vaultFlags, args []string) error {
	switch args[0] {
	case "analyze":
		return handleAnalyze(ctx, flags, args[1:])
	case "generate":
		return handleGenerate(ctx, flags, args[1:])
	case "interactive":
		return handleInteractive(ctx, flags, args[1:])
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleAnalyze(ctx context.Context, flags *vaultFlags, args []string) error {
	if err := flags.Analyze.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse analyze flags")
	}

	if flags.Analyze.cmd.NArg() != 1 {
		return errors.New("analyze takes exactly one password argument")
	}

	app, err := newApp(os.Stdout)
	if err != nil {
		return err
	}

	return app.analyze(ctx, flags.Analyze.cmd.Arg(0), *flags.Analyze.enhanced)
}

func handleGenerate(ctx context.Context, flags *vaultFlags, args []string) error {
	if err := flags.Generate.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse generate flags")
	}

	if *flags.Generate.length < 0 {
		return errors.New("--length must not be negative")
	}

	app, err := newApp(os.Stdout)
	if err != nil {
		return err
	}

	return app.generate(ctx, generateRequest{
		length:    *flags.Generate.length,
		uppercase: !*flags.Generate.noUpper,
		lowercase: !*flags.Generate.noLower,
		numbers:   !*flags.Generate.noNumbers,
		symbols:   !*flags.Generate.noSymbols,
		enhanced:  *flags.Generate.enhanced,
		qrPath:    *flags.Generate.qr,
	})
}

func handleInteractive(ctx context.Context, flags *vaultFlags, args []string) error {
	if err := flags.Interactive.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse interactive flags")
	}

	app, err := newApp(os.Stdout)
	if err != nil {
		return err
	}

	return app.interactive(ctx)
}

func printUsage() {
	fmt.Println("Usage: vaultctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  analyze      Score a password")
	fmt.Println("  generate     Generate a password")
	fmt.Println("  interactive  Start an interactive session")
	fmt.Println("")
	fmt.Println("Use 'vaultctl <command> -h' for more information about a command.")
}

// Command implementations are in app.go
