package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gorilla/schema"

	"github.com/Elastic-Softworks/worldsrc/ast"
	"github.com/Elastic-Softworks/worldsrc/codegen"
	"github.com/Elastic-Softworks/worldsrc/codegen/assemblyscript"
	"github.com/Elastic-Softworks/worldsrc/codegen/typescript"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" default:"withargs" help:"Generate target source from syntax tree files (default command)."`
	Check   CheckCmd   `cmd:"" help:"Analyze syntax tree files without writing output."`
}

//go:embed VERSION
var rawVersion string

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(versionString())
	return nil
}

// versionString prefers the module version stamped by `go install`; local
// builds report the embedded VERSION file prefixed with devel- and suffixed
// with the short VCS revision when the build carries one.
func versionString() string {
	base := strings.TrimSpace(rawVersion)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return base
	}
	if mv := info.Main.Version; mv != "" && mv != "(devel)" {
		return mv
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "devel-" + base + "+" + s.Value[:7]
		}
	}
	return "devel-" + base
}

type GenCmd struct {
	Input        string            `help:"Directory containing *.wast.json syntax tree files." type:"existingdir" required:""`
	Output       string            `help:"Output directory for generated files." default:"."`
	Target       string            `help:"Generation target." enum:"typescript,assemblyscript" default:"typescript"`
	Optimization string            `help:"Optimization level." enum:"none,basic,full" default:"basic"`
	SourceMaps   bool              `help:"Request source map generation." name:"sourcemaps"`
	Option       map[string]string `help:"Override a generator option (key=value)." short:"O"`
}

func (c *GenCmd) Run(logger *slog.Logger) error {
	target, opts, err := configure(c.Target, c.Optimization, c.SourceMaps, c.Option)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(c.Input)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no *.wast.json files in %s", c.Input)
	}

	if err := os.MkdirAll(c.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	failed := 0
	for _, path := range inputs {
		result, err := generateFile(context.Background(), target, path, &opts)
		if err != nil {
			logger.Error("generation failed", "file", path, "error", err)
			failed++
			continue
		}

		reportDiagnostics(logger, path, result)

		if !result.Success {
			failed++
			continue
		}

		base := strings.TrimSuffix(filepath.Base(path), ".wast.json")
		outPath := filepath.Join(c.Output, base+target.FileExtension())
		if err := os.WriteFile(outPath, []byte(result.Code), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logger.Info("generated",
			"file", outPath,
			"lines", result.Metadata.Lines,
			"functions", result.Metadata.Functions,
			"duration", result.Metadata.GenerationTime)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(inputs))
	}
	return nil
}

type CheckCmd struct {
	Input  string            `help:"Directory containing *.wast.json syntax tree files." type:"existingdir" required:""`
	Target string            `help:"Generation target." enum:"typescript,assemblyscript" default:"typescript"`
	Option map[string]string `help:"Override a generator option (key=value)." short:"O"`
}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	target, opts, err := configure(c.Target, "none", false, c.Option)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(c.Input)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no *.wast.json files in %s", c.Input)
	}

	failed := 0
	for _, path := range inputs {
		result, err := generateFile(context.Background(), target, path, &opts)
		if err != nil {
			logger.Error("check failed", "file", path, "error", err)
			failed++
			continue
		}
		reportDiagnostics(logger, path, result)
		if !result.Success {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(inputs))
	}
	logger.Info("all files passed", "count", len(inputs))
	return nil
}

// configure resolves the target generator and decodes -O overrides into an
// Options value layered on the CLI flags.
func configure(targetName, optimization string, sourceMaps bool, overrides map[string]string) (codegen.Target, codegen.Options, error) {
	var target codegen.Target
	switch targetName {
	case "typescript":
		target = typescript.New()
	case "assemblyscript":
		target = assemblyscript.New()
	default:
		return nil, codegen.Options{}, fmt.Errorf("unknown target %q", targetName)
	}

	opts := codegen.Options{
		Target:       targetName,
		Optimization: optimization,
		SourceMaps:   sourceMaps,
	}

	if len(overrides) > 0 {
		values := make(map[string][]string, len(overrides))
		for key, value := range overrides {
			values[key] = []string{value}
		}
		decoder := schema.NewDecoder()
		decoder.IgnoreUnknownKeys(false)
		if err := decoder.Decode(&opts, values); err != nil {
			return nil, codegen.Options{}, fmt.Errorf("invalid -O override: %w", err)
		}
	}

	return target, opts, nil
}

func collectInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".wast.json") {
			continue
		}
		inputs = append(inputs, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(inputs)
	return inputs, nil
}

func generateFile(ctx context.Context, target codegen.Target, path string, opts *codegen.Options) (*codegen.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	program, err := ast.DecodeProgram(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return codegen.Generate(ctx, target, program, opts), nil
}

func reportDiagnostics(logger *slog.Logger, path string, result *codegen.Result) {
	for _, d := range result.Diagnostics {
		attrs := []any{"file", path, "code", d.Code}
		if d.Location != nil {
			attrs = append(attrs, "line", d.Location.Line, "column", d.Location.Column)
		}
		if d.Suggestion != "" {
			attrs = append(attrs, "suggestion", d.Suggestion)
		}
		switch d.Severity {
		case codegen.SeverityError:
			logger.Error(d.Message, attrs...)
		case codegen.SeverityWarning:
			logger.Warn(d.Message, attrs...)
		default:
			logger.Info(d.Message, attrs...)
		}
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("worldsrc"),
		kong.Description("WorldSrc compiler core: semantic analysis and multi-target code generation."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
