package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/scrapriq/dashboard/internal/dashboard"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		v := dashboard.New(client)
		if err := v.CheckAPIHealth(cmd.Context()); err != nil {
			return errors.New(v.Error)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s in %s\n", v.Status, v.Latency.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
