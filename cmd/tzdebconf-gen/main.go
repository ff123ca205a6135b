package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/goliatone/go-tzdebconf/pkg/generator"
	"github.com/goliatone/go-tzdebconf/pkg/zoneinfo"
)

func main() {
	var (
		directory  string
		output     string
		format     string
		policyFile string
		audit      bool
	)

	pflag.StringVarP(&directory, "directory", "d", ".", "compiled zoneinfo directory")
	pflag.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	pflag.StringVarP(&format, "format", "f", "debconf", "output format: debconf or list")
	pflag.StringVarP(&policyFile, "policy", "p", "", "YAML overlay extending the curated alias tables")
	pflag.BoolVar(&audit, "audit", false, "report every unclassified symlink instead of stopping at the first")
	pflag.FuncP("loglevel", "l", "set log level: debug, info, warning or error", setLogLevel)
	pflag.Parse()

	info, err := os.Stat(directory)
	if err != nil {
		fatal("invalid --directory", "path", directory, "error", err)
	}
	if !info.IsDir() {
		fatal("--directory is not a directory", "path", directory)
	}

	policy := zoneinfo.DefaultPolicy()
	if policyFile != "" {
		policy = loadPolicy(policyFile)
	}

	gen := generator.New(generator.WithPolicy(policy))
	ctx := context.Background()

	if audit {
		unknown, err := gen.Audit(ctx, directory)
		if err != nil {
			fatal("audit failed", "error", err)
		}
		for _, rel := range unknown {
			fmt.Println(rel)
		}
		if len(unknown) > 0 {
			fatal("unclassified symlinks found", "count", len(unknown))
		}
		return
	}

	out, err := gen.Generate(ctx, generator.Request{Root: directory, Renderer: format})
	if err != nil {
		fatal("generate failed", "error", err)
	}

	if output != "" {
		if err := os.WriteFile(output, out, 0o644); err != nil {
			fatal("write output", "path", output, "error", err)
		}
		return
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fatal("write output", "error", err)
	}
}

func loadPolicy(path string) *zoneinfo.Policy {
	f, err := os.Open(path)
	if err != nil {
		fatal("open policy overlay", "path", path, "error", err)
	}
	defer func() { _ = f.Close() }()

	merged, err := zoneinfo.DefaultPolicy().LoadOverlay(f)
	if err != nil {
		fatal("load policy overlay", "path", path, "error", err)
	}
	return merged
}

func setLogLevel(value string) error {
	switch strings.ToLower(value) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warning":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level %q", value)
	}
	return nil
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
