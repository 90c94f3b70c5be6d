package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/outreachx/outreachx/internal/app"
	"github.com/outreachx/outreachx/internal/httpapi"
	"github.com/outreachx/outreachx/internal/store"
)

var (
	serveAddr     string
	serveStoreTTL time.Duration
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().DurationVar(&serveStoreTTL, "store.ttl", 24*time.Hour, "How long saved messages are kept (0 = forever)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.HTTPAddr != "" && !cmd.Flags().Changed("addr") {
			serveAddr = cfg.HTTPAddr
		}
		if cfg.StoreTTL > 0 && !cmd.Flags().Changed("store.ttl") {
			serveStoreTTL = cfg.StoreTTL
		}
		a := app.New(cfg)
		srv := &httpapi.Server{App: a, Messages: store.NewMemory(serveStoreTTL)}

		log.Info().Str("addr", serveAddr).Bool("ai", a.AIEnabled()).Msg("listening")
		return http.ListenAndServe(serveAddr, srv.Handler())
	},
}
