package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/showdown/internal/sentiment"
)

var (
	positiveColor = color.New(color.FgRed, color.Bold)
	negativeColor = color.New(color.FgBlue, color.Bold)
	errorColor    = color.New(color.FgHiBlack, color.Bold)
)

var classifyCmd = &cobra.Command{
	Use:   "classify TEXT...",
	Short: "Classify a sentence without starting the game",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		svc, err := loadClassifier(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return sentiment.ErrEmptyInput
		}
		res := svc.Classify(cmd.Context(), text)
		printResult(cmd.OutOrStdout(), svc.ModelName(), res)
		if res.Err != nil {
			return res.Err
		}
		return nil
	},
}

func printResult(w io.Writer, model string, res sentiment.Result) {
	c := errorColor
	switch res.Label {
	case sentiment.LabelPositive:
		c = positiveColor
	case sentiment.LabelNegative:
		c = negativeColor
	}
	fmt.Fprintf(w, "%s %s  %.1f%%  (%s)\n",
		res.Label.Emoji(), c.Sprint(string(res.Label)), res.Confidence*100, model)
}
