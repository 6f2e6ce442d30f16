package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var errCMSDown = errors.New("cms is not healthy")

func newHealthCmd(a *app) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check whether the CMS answers its health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.gateway.Status()
			out := cmd.OutOrStdout()
			if !st.Enabled {
				fmt.Fprintln(out, "cms: disabled (serving fallback dataset)")
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if !a.gateway.Health(ctx) {
				fmt.Fprintf(out, "cms: down (%s)\n", st.URL)
				return errCMSDown
			}
			fmt.Fprintf(out, "cms: up (%s)\n", st.URL)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "health check timeout")
	return cmd
}
