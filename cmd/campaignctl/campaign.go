package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"jobboard-ads/internal/auth"
	"jobboard-ads/internal/core/domain"
)

var commandEvents = map[string]domain.Event{
	"pause":  domain.EventPause,
	"resume": domain.EventResume,
	"pay":    domain.EventPaymentConfirmed,
	"end":    domain.EventTerminate,
}

func launchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <id>",
		Short: "Submit a draft campaign for review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			c, err := s.Launch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !c.Confirmed() {
				a.log.Warn("campaign saved locally only, run sync to retry", slog.String("id", c.ID))
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
}

func eventCommand(a *app, name, short string) *cobra.Command {
	ev := commandEvents[name]
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			c, err := s.Apply(cmd.Context(), args[0], ev)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
}

func showCommand(a *app) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			var c domain.Campaign
			if refresh {
				c, err = s.Refresh(cmd.Context(), args[0])
			} else {
				c, err = s.Get(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "fetch the server copy first")
	return cmd
}

func listCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List campaigns, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			items, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), items)
		},
	}
}

func syncCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local campaigns with the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			report, err := s.Sync(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if report.RemoteErr != nil {
				fmt.Fprintf(out, "server unreachable, showing local data: %v\n", report.RemoteErr)
			}
			fmt.Fprintf(out, "created %d, merged %d, pushed %d\n", report.Created, report.Merged, report.Pushed)
			items, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			return printTable(out, items)
		},
	}
}

func removeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Forget a campaign locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			return s.Remove(cmd.Context(), args[0])
		},
	}
}

func tokenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint a development bearer token signed with AUTH_JWT_SECRET",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := auth.NewJWTService(a.cfg.Auth).Generate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(w io.Writer, items []domain.Campaign) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tOBJECTIVE\tBUDGET\tDATES\tREVIEW ENDS\tIMPRESSIONS\tCLICKS")
	for _, c := range items {
		reviewEnds := "-"
		if c.Status == domain.StatusReview && !c.Review.EndsAt.IsZero() {
			reviewEnds = c.Review.EndsAt.Local().Format(time.TimeOnly)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s..%s\t%s\t%d\t%d\n",
			c.Identity(), c.Status.Label(), c.Objective, c.Budget.Total,
			c.Budget.StartDate.Format(time.DateOnly), c.Budget.EndDate.Format(time.DateOnly),
			reviewEnds, c.Stats.Impressions, c.Stats.Clicks)
	}
	return tw.Flush()
}
