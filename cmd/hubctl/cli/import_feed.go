package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"content-hub/cmd/internal/httpclient"
	"content-hub/fallback"
	"content-hub/feeder"
)

func newImportFeedCmd(a *app) *cobra.Command {
	var (
		outPath string
		limit   int
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "import-feed <rss-url>",
		Short: "Convert a podcast RSS feed into a fallback dataset",
		Long: `Fetches a podcast RSS feed and writes a fallback dataset YAML file with
its episodes, the topics they are tagged with and their guests. Point
fallback.path (or FALLBACK_PATH) at the result to serve it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := httpclient.New(httpclient.Config{Timeout: timeout})
			d, err := feeder.NewImporter(client).FetchPodcast(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			if outPath == "" {
				if err := d.Write(cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("write dataset: %w", err)
				}
				return nil
			}
			if err := writeDatasetFile(outPath, d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d episodes, %d topics, %d guests to %s\n",
				len(d.Episodes), len(d.Topics), len(d.Guests), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "import only the first n items (0 for all)")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "feed request timeout")
	return cmd
}

// writeDatasetFile returns the Close error as well as the Write error.
func writeDatasetFile(path string, d *fallback.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	werr := d.Write(f)
	if werr != nil {
		werr = fmt.Errorf("write dataset: %w", werr)
	}
	if cerr := f.Close(); cerr != nil {
		return errors.Join(werr, fmt.Errorf("close %s: %w", path, cerr))
	}
	return werr
}
