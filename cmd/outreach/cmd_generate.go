package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/outreachx/outreachx/internal/app"
)

var (
	generateRequestPath string
	generateOutPath     string
	generatePDFPath     string
)

func init() {
	generateCmd.Flags().StringVarP(&generateRequestPath, "request", "r", "request.yaml", "Path to the outreach request (YAML or JSON)")
	generateCmd.Flags().StringVarP(&generateOutPath, "out", "o", "", "Write the message to a file instead of stdout")
	generateCmd.Flags().StringVar(&generatePDFPath, "pdf", "", "Also write the message as a PDF")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an outreach message from a request file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		req, err := app.LoadRequestFile(generateRequestPath)
		if err != nil {
			return err
		}

		res := a.Generate(cmd.Context(), req)
		if !res.Success {
			for _, e := range res.Errors {
				fmt.Fprintln(os.Stderr, "error:", e)
			}
			return fmt.Errorf("request failed validation (%d errors)", len(res.Errors))
		}
		for _, warn := range res.Warnings {
			log.Warn().Str("id", res.MessageID).Msg(warn)
		}
		log.Debug().Str("id", res.MessageID).Str("type", res.GenerationType).Msg("message generated")

		if generateOutPath != "" {
			if err := os.WriteFile(generateOutPath, []byte(res.Message+"\n"), 0o644); err != nil {
				return fmt.Errorf("write message: %w", err)
			}
		} else {
			fmt.Println(res.Message)
		}
		if generatePDFPath != "" {
			if err := app.WriteMessagePDF(res.Message, generatePDFPath); err != nil {
				return fmt.Errorf("write pdf: %w", err)
			}
			log.Info().Str("path", generatePDFPath).Msg("pdf written")
		}
		return nil
	},
}
