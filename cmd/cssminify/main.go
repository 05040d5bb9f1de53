// Command cssminify reads CSS from a file or stdin and writes a minified
// version to stdout or a destination file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Mnwa/css-minify"
	"github.com/Mnwa/css-minify/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}

	log, err := cfg.Logging.Prepare()
	if err != nil {
		return fmt.Errorf("unable to prepare logging: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	level := cssminify.Level(cfg.Level)
	if cmd.IsSet("level") {
		level = cssminify.Level(cmd.Int("level"))
	}
	if level < cssminify.LevelZero || level > cssminify.LevelThree {
		return fmt.Errorf("level must be between 0 and 3, got %d", level)
	}

	var in io.Reader = os.Stdin
	if name := cmd.Args().First(); len(name) > 0 {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("unable to open source file '%s': %w", name, err)
		}
		defer f.Close()
		in = f
	}
	source, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}

	out := os.Stdout
	if name := cmd.String("output"); len(name) > 0 {
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", name, err)
		}
		defer f.Close()
		out = f
	}

	engine := cssminify.NewEngine(log)
	if err := engine.MinifyTo(out, string(source), level); err != nil {
		log.Error("minify failed", zap.Error(err))
		return err
	}
	return nil
}

func dumpConfig(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}
	data, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func main() {
	app := &cli.Command{
		Name:            "cssminify",
		Usage:           "minify CSS source",
		HideHelpCommand: true,
		ArgsUsage:       "[SOURCE]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.IntFlag{Name: "level", Aliases: []string{"l"}, Usage: "optimization level 0-3, overrides the config file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write minified CSS to `FILE` instead of stdout"},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "dumpconfig",
				Usage:  "print the active configuration as YAML",
				Action: dumpConfig,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cssminify: %v\n", err)
		os.Exit(1)
	}
}
