package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/outreachx/outreachx/internal/profile"
)

var refineMessagePath string

func init() {
	refineCmd.Flags().StringVarP(&refineMessagePath, "message", "m", "", "Path to the message to refine (default: stdin)")
	rootCmd.AddCommand(refineCmd)
}

var refineCmd = &cobra.Command{
	Use:   "refine <type>",
	Short: "Rework an existing message",
	Long: `Refines a drafted message. Supported types include "shorter",
"more formal", "more friendly", "more confident", "more empathy" and
"add specifics". Unrecognized types leave the message unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		text, err := readMessage(refineMessagePath)
		if err != nil {
			return err
		}

		res := a.Refine(cmd.Context(), text, args[0], profile.Request{})
		fmt.Println(res.Message)
		return nil
	},
}

func readMessage(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read message: %w", err)
	}
	return string(b), nil
}
