package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	everify "github.com/everify/everify-go"
	"github.com/everify/everify-go/cmd/everify/commands"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	// The environment must be complete before kingpin resolves envars.
	if err := loadEnvFile(args[1:]); err != nil {
		return err
	}

	app := kingpin.New("everify", "Everify phone verification client.")
	app.Version(everify.ClientID())
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	startCmd := commands.NewStartCommand(rootCmd, app)
	checkCmd := commands.NewCheckCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		startCmd.Name(): startCmd,
		checkCmd.Name(): checkCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard output.
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Set logger.
	rootCmd.Logger = getLogger(*rootCmd)

	cmd, ok := cmds[cmdName]
	if !ok {
		return fmt.Errorf("unknown command %q", cmdName)
	}

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmd.Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// loadEnvFile loads the dotenv file selected by --env-file, or the
// default one when present. Variables already set are not overridden.
func loadEnvFile(args []string) error {
	path, explicit := envFileFromArgs(args)
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not load env file %q: %w", path, err)
	}
	return nil
}

func envFileFromArgs(args []string) (path string, explicit bool) {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return v, true
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return commands.DefaultEnvFile, false
}

// getLogger returns the application logger.
func getLogger(config commands.RootCommand) everify.Logger {
	if config.NoLog {
		return everify.NoopLogger
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := everify.NewLogrusLogger(logrusLogEntry).WithValues(everify.Kv{
		"version": everify.Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
