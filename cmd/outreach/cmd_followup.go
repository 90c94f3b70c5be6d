package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/outreachx/outreachx/internal/app"
)

var (
	followUpRequestPath  string
	followUpPreviousPath string
)

func init() {
	followUpCmd.Flags().StringVarP(&followUpRequestPath, "request", "r", "request.yaml", "Path to the outreach request (YAML or JSON)")
	followUpCmd.Flags().StringVarP(&followUpPreviousPath, "previous", "p", "", "Path to the previously sent message")
	_ = followUpCmd.MarkFlagRequired("previous")
	rootCmd.AddCommand(followUpCmd)
}

var followUpCmd = &cobra.Command{
	Use:   "followup",
	Short: "Draft a polite follow-up to an earlier message",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		req, err := app.LoadRequestFile(followUpRequestPath)
		if err != nil {
			return err
		}
		previous, err := os.ReadFile(followUpPreviousPath)
		if err != nil {
			return fmt.Errorf("read previous message: %w", err)
		}

		res := a.GenerateFollowUp(cmd.Context(), req, string(previous))
		log.Debug().Str("id", res.MessageID).Str("type", res.GenerationType).Msg("follow-up generated")
		fmt.Println(res.Message)
		return nil
	},
}
