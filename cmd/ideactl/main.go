// Command ideactl is the operator tool for the idea board: it mints access
// tokens and inspects or repairs a user's board directly in the database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:      "ideactl",
		Usage:     "Administer idea boards",
		UsageText: "ideactl command [command options]",
		Description: `ideactl talks to the board database configured through the same
environment as the server (DATABASE_URL, STRICT_DENSITY, ...).

Use 'ideactl audit' to find stages whose positions have gaps or duplicates
and 'ideactl compact' to renumber them.`,
		Commands: []*cli.Command{
			{
				Name:  "token",
				Usage: "Print a signed access token for a user",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "user ID placed in the token subject",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "secret",
						Usage:    "HS256 signing secret",
						Sources:  cli.EnvVars("JWT_SECRET"),
						Required: true,
					},
					&cli.DurationFlag{
						Name:    "ttl",
						Usage:   "token lifetime",
						Sources: cli.EnvVars("JWT_EXPIRATION"),
						Value:   24 * time.Hour,
					},
				},
				Action: runToken,
			},
			{
				Name:   "ls",
				Usage:  "Print a user's board grouped by stage",
				Flags:  []cli.Flag{ownerFlag()},
				Action: runList,
			},
			{
				Name:   "audit",
				Usage:  "Report stages whose positions are not 0..n-1",
				Flags:  []cli.Flag{ownerFlag()},
				Action: runAudit,
			},
			{
				Name:   "compact",
				Usage:  "Renumber every stage of a user's board to 0..n-1",
				Flags:  []cli.Flag{ownerFlag()},
				Action: runCompact,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func ownerFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "owner",
		Aliases:  []string{"o"},
		Usage:    "owner (user ID) of the board",
		Required: true,
	}
}
