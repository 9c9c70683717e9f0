package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// CheckOutput is the JSON printed by the check command.
type CheckOutput struct {
	Status   string `json:"status"`
	Verified bool   `json:"verified"`
}

type CheckCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	phoneNumber string
	code        string
}

// NewCheckCommand returns the check command.
func NewCheckCommand(rootCmd *RootCommand, app *kingpin.Application) *CheckCommand {
	c := &CheckCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("check", "Check a code against the active verification of a phone number.")
	c.Cmd.Arg("phone-number", "Phone number being verified.").Required().StringVar(&c.phoneNumber)
	c.Cmd.Arg("code", "Code received by the phone.").Required().StringVar(&c.code)

	return c
}

func (c CheckCommand) Name() string { return c.Cmd.FullCommand() }

func (c CheckCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.NewClient()
	if err != nil {
		return err
	}

	result, err := client.CheckVerification(ctx, c.phoneNumber, c.code)
	if err != nil {
		return fmt.Errorf("could not check verification: %w", err)
	}

	if !result.Verified() {
		c.rootCmd.Logger.Warningf("Code not accepted yet")
	}

	return c.rootCmd.PrintJSON(CheckOutput{
		Status:   string(result.Status),
		Verified: result.Verified(),
	})
}
