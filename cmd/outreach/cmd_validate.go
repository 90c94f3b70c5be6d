package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/outreachx/outreachx/internal/app"
)

var validateRequestPath string

func init() {
	validateCmd.Flags().StringVarP(&validateRequestPath, "request", "r", "request.yaml", "Path to the outreach request (YAML or JSON)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a request file without generating anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		req, err := app.LoadRequestFile(validateRequestPath)
		if err != nil {
			return err
		}

		res := a.Validate(req)
		if !res.Valid {
			for _, e := range res.Errors {
				fmt.Fprintln(os.Stderr, "error:", e)
			}
			return fmt.Errorf("request failed validation (%d errors)", len(res.Errors))
		}
		for _, warn := range a.DetectWarnings(req.Student) {
			fmt.Fprintln(os.Stderr, "warning:", warn)
		}
		fmt.Println("request is valid")
		return nil
	},
}
