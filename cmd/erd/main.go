// erd renders SQL DDL scripts as Mermaid entity-relationship diagrams.
//
//	erd --file schema.sql                     # print to stdout
//	erd --file schema.sql -o docs/schema.mmd  # write a file
//	erd --file schema.sql -o schema.mmd -w    # regenerate on change
//	erd --config erd.yaml                     # generate every diagram of a project
//
// Flags can also be set through ERD_* environment variables, including from
// a .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/syssam/erd"
	"github.com/syssam/erd/compiler"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCommand(os.Stdout, os.Stderr).Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "erd: %s\n", strings.TrimPrefix(err.Error(), "erd: "))
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "erd",
		Usage:     "render SQL DDL as a Mermaid entity-relationship diagram",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read the SQL script from `FILE`",
				Sources: cli.EnvVars("ERD_FILE"),
			},
			&cli.StringFlag{
				Name:    "output-file",
				Aliases: []string{"o"},
				Usage:   "write the diagram to `FILE` instead of stdout",
				Sources: cli.EnvVars("ERD_OUTPUT_FILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "generate every diagram listed in the YAML project `FILE`",
				Sources: cli.EnvVars("ERD_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "regenerate whenever the input file changes",
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "number of project diagrams generated in parallel",
				Sources: cli.EnvVars("ERD_WORKERS"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("ERD_VERBOSE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, stdout, stderr)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	file, project := cmd.String("file"), cmd.String("config")
	switch {
	case file == "" && project == "":
		return erd.NewConfigError("file", nil, "one of --file or --config is required")
	case file != "" && project != "":
		return erd.NewConfigError("config", project, "cannot be combined with --file")
	case cmd.Bool("watch") && file == "":
		return erd.NewConfigError("watch", nil, "requires --file")
	}

	opts := []compiler.Option{
		compiler.WithLogger(logger),
		compiler.WithStdout(stdout),
	}
	if project != "" {
		p, err := compiler.LoadProject(project)
		if err != nil {
			return err
		}
		opts = append(opts, p.Options()...)
		if cmd.IsSet("workers") {
			opts = append(opts, compiler.WithWorkers(cmd.Int("workers")))
		}
		c, err := compiler.New(opts...)
		if err != nil {
			return err
		}
		logger.Debug("generating project", "config", project, "diagrams", len(p.Diagrams))
		return c.CompileAll(ctx, p.Diagrams)
	}

	c, err := compiler.New(opts...)
	if err != nil {
		return err
	}
	job := compiler.Job{File: file, Output: cmd.String("output-file")}
	if cmd.Bool("watch") {
		logger.Info("watching for changes", "file", file)
		return c.Watch(ctx, job)
	}
	return c.CompileFile(ctx, job)
}
