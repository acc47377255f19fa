package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/questionforge/ingestor/internal/extractor"
	"github.com/questionforge/ingestor/internal/logger"
)

func importCommand() *cobra.Command {
	var (
		roles  []string
		levels []string
		langs  []string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import curated market questions and approve them into the catalog",
		Long: "Stages questions from the curated Vietnam IT market dataset, optionally " +
			"filtered by role, level and language, then approves every staged item.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(roles, levels, langs)
		},
	}

	cmd.Flags().StringSliceVar(&roles, "role", nil, "filter by role (repeatable)")
	cmd.Flags().StringSliceVar(&levels, "level", nil, "filter by level (repeatable)")
	cmd.Flags().StringSliceVar(&langs, "lang", nil, "filter by language (repeatable)")

	return cmd
}

func runImport(roles, levels, langs []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()

	summary, err := a.ingestor.Ingest(ctx, datasetURL(roles, levels, langs))
	if err != nil {
		return err
	}
	a.log.Info("staged dataset questions", logger.Int("count", summary.Count))

	approved := 0
	for _, item := range summary.Items {
		if err := a.reviewer.Approve(ctx, item.ID); err != nil {
			a.log.Warn("approve failed",
				logger.String("id", item.ID.String()),
				logger.String("title", item.Title),
				logger.Err(err))
			continue
		}
		approved++
	}

	fmt.Printf("imported %d of %d questions\n", approved, summary.Count)
	return nil
}

func datasetURL(roles, levels, langs []string) string {
	q := url.Values{}
	for _, r := range roles {
		q.Add("role", r)
	}
	for _, l := range levels {
		q.Add("level", l)
	}
	for _, l := range langs {
		q.Add("lang", l)
	}
	u := extractor.DatasetScheme + "questions"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}
