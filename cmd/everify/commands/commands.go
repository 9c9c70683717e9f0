package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	everify "github.com/everify/everify-go"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// DefaultEnvFile is the dotenv file loaded before flags are parsed.
const DefaultEnvFile = ".env"

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	EnvFile    string
	APIKey     string
	BaseURL    string
	Sandbox    bool

	// Global instances.
	Stdout io.Writer
	Stderr io.Writer
	Logger everify.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("env-file", "Dotenv file loaded before reading the environment.").Default(DefaultEnvFile).StringVar(&c.EnvFile)
	app.Flag("api-key", "Everify API key.").Envar("EVERIFY_API_KEY").Required().StringVar(&c.APIKey)
	app.Flag("base-url", "Everify API base URL.").Envar("EVERIFY_BASE_URL").StringVar(&c.BaseURL)
	app.Flag("sandbox", "Use sandbox mode by default.").Envar("EVERIFY_SANDBOX").BoolVar(&c.Sandbox)

	return c
}

// NewClient returns an Everify client built from the global flags.
func (r *RootCommand) NewClient() (*everify.Client, error) {
	opts := []everify.Option{
		everify.WithSandbox(r.Sandbox),
		everify.WithLogger(r.Logger),
	}
	if r.BaseURL != "" {
		opts = append(opts, everify.WithBaseURL(r.BaseURL))
	}

	client, err := everify.New(r.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create everify client: %w", err)
	}
	return client, nil
}

// PrintJSON writes v to the command's standard output as indented JSON.
func (r *RootCommand) PrintJSON(v any) error {
	enc := json.NewEncoder(r.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
