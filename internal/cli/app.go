// Package cli implements the idgen command line: flag parsing, subcommands,
// namespace aliases, output rendering and exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/maniartech/idgen/internal/config"
	"github.com/maniartech/idgen/internal/id"
	"github.com/maniartech/idgen/internal/inspector"
	pkglog "github.com/maniartech/idgen/pkg/log"
)

// Version is reported by --version. Overridden at build time with
// -ldflags "-X github.com/maniartech/idgen/internal/cli.Version=...".
var Version = "dev"

const usageHeader = `Usage:
  idgen [flags]                       generate identifiers
  idgen inspect [--json] <id>         detect the type of an identifier
  idgen validate [flags] <id>         check an identifier against a type

IDs starting with '-' must follow '--', e.g. idgen inspect -- -V1StGXR8_Z5jdHi6BmyT
`

// Generator produces and validates identifiers. *id.Dispatcher implements it.
type Generator interface {
	GenerateBatch(ctx context.Context, f id.Format, p id.Params, count int) ([]string, error)
	Validate(f id.Format, p id.Params, candidate string) (bool, string)
}

// Inspector classifies identifiers. *inspector.Inspector implements it.
type Inspector interface {
	Inspect(candidate string) inspector.Result
}

// App is one configured command line. Identifiers and reports go to stdout,
// errors to stderr.
type App struct {
	cfg    *config.Config
	gen    Generator
	insp   Inspector
	stdout io.Writer
	stderr io.Writer
}

func New(cfg *config.Config, gen Generator, insp Inspector, stdout, stderr io.Writer) *App {
	return &App{
		cfg:    cfg,
		gen:    gen,
		insp:   insp,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes args (without the program name) and returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "inspect":
			return a.runInspect(pkglog.WithStr(ctx, pkglog.FieldCommand, "inspect"), args[1:])
		case "validate":
			return a.runValidate(pkglog.WithStr(ctx, pkglog.FieldCommand, "validate"), args[1:])
		}
	}
	return a.runGenerate(pkglog.WithStr(ctx, pkglog.FieldCommand, "generate"), args)
}

func (a *App) runGenerate(ctx context.Context, args []string) int {
	const name = "idgen"
	fs := newFlagSet(name)
	typeName := fs.StringP("type", "t", "uuid4", "ID type: "+names(idTypes))
	formatName := fs.StringP("format", "f", "hyphenated", "UUID rendering: "+names(renderings))
	count := fs.IntP("count", "c", 1, "number of IDs to generate")
	length := fs.IntP("length", "l", a.cfg.NanoID.Size, "NanoID length")
	prefix := fs.StringP("prefix", "p", "", "text prepended to each ID")
	suffix := fs.StringP("suffix", "s", "", "text appended to each ID")
	namespace := fs.String("namespace", "", "UUID v3/v5 namespace: DNS, URL, OID, X500 or a UUID")
	nameArg := fs.String("name", "", "UUID v3/v5 name")
	asJSON := fs.Bool("json", false, "print a JSON array of {\"value\": ...} objects")
	showBanner := fs.BoolP("banner", "b", false, "print the banner before the IDs")
	showVersion := fs.BoolP("version", "V", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return a.parseError(name, fs, err)
	}
	if fs.NArg() > 0 {
		return a.usageError(ctx, fmt.Errorf("unexpected argument %q", fs.Arg(0)))
	}
	if *showVersion {
		fmt.Fprintf(a.stdout, "idgen %s\n", Version)
		return ExitOK
	}
	if *showBanner {
		fmt.Fprintln(a.stdout, banner)
	}
	if *count < 1 {
		return a.usageError(ctx, fmt.Errorf("Count must be at least 1, got %d", *count))
	}

	f, err := parseFormat(*typeName, *formatName)
	if err != nil {
		return a.usageError(ctx, err)
	}

	var p id.Params
	switch {
	case f.Family() == id.FamilyNanoID:
		p = p.WithLength(*length)
	case f.Family() == id.FamilyUUID && f.UUIDVersion().NameBased():
		if fs.Changed("namespace") {
			ns, err := resolveNamespace(*namespace)
			if err != nil {
				return a.usageError(ctx, err)
			}
			p = p.WithNamespace(ns)
		}
		if fs.Changed("name") {
			p = p.WithName(*nameArg)
		}
	}

	ids, err := a.gen.GenerateBatch(ctx, f, p, *count)
	if err != nil {
		return a.fail(ctx, err, exitCode(err))
	}
	if err := writeIDs(a.stdout, ids, *prefix, *suffix, *asJSON); err != nil {
		return a.fail(ctx, err, ExitError)
	}
	return ExitOK
}

func (a *App) runInspect(ctx context.Context, args []string) int {
	const name = "idgen inspect"
	fs := newFlagSet(name)
	asJSON := fs.Bool("json", false, "print the result as JSON")

	if err := fs.Parse(args); err != nil {
		return a.parseError(name, fs, err)
	}
	if fs.NArg() != 1 {
		return a.usageError(ctx, fmt.Errorf("inspect takes exactly one ID, got %d arguments", fs.NArg()))
	}

	candidate := fs.Arg(0)
	res := a.insp.Inspect(candidate)
	l := pkglog.Ctx(ctx)
	l.Debug().Str(pkglog.FieldIDType, res.IDType).Bool(pkglog.FieldValid, res.Valid).Msg("inspected identifier")

	if err := writeInspection(a.stdout, candidate, res, *asJSON); err != nil {
		return a.fail(ctx, err, ExitError)
	}
	if !res.Valid {
		return ExitError
	}
	return ExitOK
}

func (a *App) runValidate(ctx context.Context, args []string) int {
	const name = "idgen validate"
	fs := newFlagSet(name)
	typeName := fs.StringP("type", "t", "uuid4", "ID type: "+names(idTypes))
	formatName := fs.StringP("format", "f", "hyphenated", "UUID rendering: "+names(renderings))
	length := fs.IntP("length", "l", a.cfg.NanoID.Size, "expected NanoID length")
	asJSON := fs.Bool("json", false, "print the result as JSON")

	if err := fs.Parse(args); err != nil {
		return a.parseError(name, fs, err)
	}
	if fs.NArg() != 1 {
		return a.usageError(ctx, fmt.Errorf("validate takes exactly one ID, got %d arguments", fs.NArg()))
	}

	f, err := parseFormat(*typeName, *formatName)
	if err != nil {
		return a.usageError(ctx, err)
	}
	var p id.Params
	if f.Family() == id.FamilyNanoID {
		p = p.WithLength(*length)
	}

	candidate := fs.Arg(0)
	valid, reason := a.gen.Validate(f, p, candidate)
	l := pkglog.Ctx(ctx)
	l.Debug().Str(pkglog.FieldFormat, f.String()).Bool(pkglog.FieldValid, valid).Msg("validated identifier")

	out := validationOutput{Valid: valid, Format: f.String(), Reason: reason}
	if err := writeValidation(a.stdout, candidate, out, *asJSON); err != nil {
		return a.fail(ctx, err, ExitError)
	}
	if !valid {
		return ExitError
	}
	return ExitOK
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseError handles a pflag parse failure; -h/--help is not an error.
func (a *App) parseError(name string, fs *pflag.FlagSet, err error) int {
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(a.stdout, usageHeader)
		fmt.Fprintf(a.stdout, "\nFlags for %s:\n%s", name, fs.FlagUsages())
		return ExitOK
	}
	fmt.Fprintf(a.stderr, "Error: %s\n", err)
	fmt.Fprintf(a.stderr, "Run '%s --help' for usage.\n", name)
	return ExitUsage
}

func (a *App) usageError(ctx context.Context, err error) int {
	return a.fail(ctx, err, ExitUsage)
}

func (a *App) fail(ctx context.Context, err error, code int) int {
	l := pkglog.Ctx(ctx)
	l.Debug().Err(err).Int("exit_code", code).Msg("command failed")
	fmt.Fprintf(a.stderr, "Error: %s\n", err)
	return code
}
