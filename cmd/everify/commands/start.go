package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	everify "github.com/everify/everify-go"
)

// StartOutput is the JSON printed by the start command.
type StartOutput struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	Region      string    `json:"region,omitempty"`
	Locale      string    `json:"locale,omitempty"`
	Sandbox     bool      `json:"sandbox"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Status      string    `json:"status"`
}

type StartCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	phoneNumber  string
	method       string
	locale       string
	forceSandbox bool
	noSandbox    bool
}

// NewStartCommand returns the start command.
func NewStartCommand(rootCmd *RootCommand, app *kingpin.Application) *StartCommand {
	c := &StartCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("start", "Start a verification and send a code to a phone number.")
	c.Cmd.Arg("phone-number", "Phone number to verify.").Required().StringVar(&c.phoneNumber)
	c.Cmd.Flag("method", "Code delivery method.").Default(string(everify.MethodSMS)).EnumVar(&c.method, string(everify.MethodSMS))
	c.Cmd.Flag("locale", "Locale of the message sent to the phone.").StringVar(&c.locale)
	c.Cmd.Flag("force-sandbox", "Use sandbox mode for this call.").BoolVar(&c.forceSandbox)
	c.Cmd.Flag("no-sandbox", "Disable sandbox mode for this call.").BoolVar(&c.noSandbox)

	return c
}

func (c StartCommand) Name() string { return c.Cmd.FullCommand() }

func (c StartCommand) Run(ctx context.Context) error {
	if c.forceSandbox && c.noSandbox {
		return fmt.Errorf("--force-sandbox and --no-sandbox are mutually exclusive")
	}

	client, err := c.rootCmd.NewClient()
	if err != nil {
		return err
	}

	opts := []everify.StartOption{everify.WithMethod(everify.Method(c.method))}
	if c.locale != "" {
		opts = append(opts, everify.WithLocale(c.locale))
	}
	switch {
	case c.forceSandbox:
		opts = append(opts, everify.WithSandboxOverride(true))
	case c.noSandbox:
		opts = append(opts, everify.WithSandboxOverride(false))
	}

	result, err := client.StartVerification(ctx, c.phoneNumber, opts...)
	if err != nil {
		return fmt.Errorf("could not start verification: %w", err)
	}

	c.rootCmd.Logger.Infof("Verification %s started, expires at %s", result.ID, result.ExpiresAt.Format(time.RFC3339))

	return c.rootCmd.PrintJSON(StartOutput{
		ID:          result.ID,
		PhoneNumber: result.PhoneNumber,
		Region:      everify.PhoneRegion(result.PhoneNumber),
		Locale:      result.Locale,
		Sandbox:     result.Sandbox,
		CreatedAt:   result.CreatedAt,
		ExpiresAt:   result.ExpiresAt,
		Status:      string(result.Status),
	})
}
