package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/showdown/internal/app"
)

// runApp loads the classifier and launches the TUI. A model that fails to
// load leaves the game playable with every analysis reported as an error.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	svc, loadErr := loadClassifier(ctx, cfg, logger)
	if loadErr != nil {
		warn(loadErr)
		warn("Every analysis will be reported as ERROR.")
	}

	skipSplash, _ := cmd.Flags().GetBool("skip-splash")
	return app.Run(ctx, app.Options{
		Classifier: svc,
		ModelName:  svc.ModelName(),
		LoadErr:    loadErr,
		Logger:     logger,
		SkipSplash: skipSplash,
	})
}
