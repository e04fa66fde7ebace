package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	o := newOptions()
	var logger zerolog.Logger

	root := &cobra.Command{
		Use:           "wasteclassd",
		Short:         "Classify photos of waste and show disposal advice",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.checkEnv(cmd); err != nil {
				return err
			}
			if err := o.applyFile(cmd); err != nil {
				return err
			}
			logger = newLogger(cmd.ErrOrStderr(), o.logLevel)
			return nil
		},
		// bare invocation serves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), o, logger)
		},
	}
	o.bind(root)

	serve := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP server",
		Example: "  PORT=8080 wasteclassd serve --model model_Final.onnx --labels labels.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), o, logger)
		},
	}

	var markdown bool
	predict := &cobra.Command{
		Use:     "predict <image>",
		Short:   "Classify one image file and print the result",
		Example: "  wasteclassd predict bottle.jpg\n  wasteclassd predict --markdown bottle.jpg",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd.Context(), o, logger, args[0], markdown, cmd.OutOrStdout())
		},
	}
	predict.Flags().BoolVar(&markdown, "markdown", false, "Print the advisory markdown instead of JSON")

	root.AddCommand(serve, predict)
	return root
}
