package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"content-hub/filter"
	"content-hub/models"
)

type listFlags struct {
	query string
	topic string
	sort  string
	limit int
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "text query over title, description and person name")
	cmd.Flags().StringVarP(&f.topic, "topic", "t", "", "exact topic name (all for every topic)")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", string(filter.SortNewest), "newest, oldest or popular")
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "max results (0 for all)")
}

func (f *listFlags) controls() filter.Controls {
	return filter.Controls{
		Query: f.query,
		Topic: f.topic,
		Sort:  filter.SortMode(f.sort),
	}.Normalize()
}

func newEpisodesCmd(a *app) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "List episodes with the filter engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			controls := flags.controls()
			res := filter.Apply(a.gateway.Episodes(cmd.Context()), controls)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, res.Summary("episode"))
			if !controls.IsDefault() {
				fmt.Fprintf(out, "share: ?%s\n", controls.Encode())
			}
			fmt.Fprintln(out)
			for _, ep := range head(res.Items, flags.limit) {
				fmt.Fprintf(out, "%s  %-12s  %s | %s  (%d plays)\n", episodeNumber(ep), ep.Date, ep.Title, ep.Guest.Name, ep.Plays)
			}
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func newArticlesCmd(a *app) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List articles with the filter engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			controls := flags.controls()
			res := filter.Apply(a.gateway.Articles(cmd.Context()), controls)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, res.Summary("article"))
			fmt.Fprintln(out)
			for _, art := range head(res.Items, flags.limit) {
				fmt.Fprintf(out, "%-12s  %s  [%s, %s]\n", art.Date, art.Title, art.Topic, art.ReadTime)
			}
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func newTopicsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics with episode and article counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			topics := a.gateway.Topics(cmd.Context())
			out := cmd.OutOrStdout()
			if len(topics) == 0 {
				fmt.Fprintln(out, "No topics found.")
				return nil
			}
			fmt.Fprintf(out, "Topics (%d):\n\n", len(topics))
			for _, t := range topics {
				var count models.TopicCount
				if t.Count != nil {
					count = *t.Count
				}
				fmt.Fprintf(out, "  %-30s episodes=%d articles=%d\n", t.Name+" ("+t.Slug+")", count.Episodes, count.Articles)
			}
			return nil
		},
	}
}

func episodeNumber(ep models.Episode) string {
	if ep.EpisodeNumber == nil {
		return "  -"
	}
	return fmt.Sprintf("#%-2d", *ep.EpisodeNumber)
}

func head[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
