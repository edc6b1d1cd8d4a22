package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"counsel/internal/logger"
	"counsel/internal/server"
)

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port from config)")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Expose the analysis pipeline over HTTP:

  GET  /               service metadata
  GET  /health         liveness check
  POST /api/analyze    full analysis (services, costs, guide)
  POST /api/iac        Terraform bundle
  POST /api/narrative  markdown narrative

Authentication uses the X-API-Key header against server.api_keys from the
config file; anonymous access is controlled by server.allow_anonymous.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.New(viper.GetString("log.level"), viper.GetString("log.format"))
	defer log.Sync()

	cfg := server.DefaultConfig()
	if port := viper.GetInt("server.port"); port != 0 {
		cfg.Port = port
	}
	cfg.APIKeys = viper.GetStringSlice("server.api_keys")
	cfg.AllowAnonymous = viper.GetBool("server.allow_anonymous")
	if n := viper.GetInt("server.rate_limit.requests"); n > 0 {
		cfg.RateLimitRequests = n
	}
	if secs := viper.GetInt("server.rate_limit.window_seconds"); secs > 0 {
		cfg.RateLimitWindow = time.Duration(secs) * time.Second
	}

	return server.New(cfg, log).StartWithGracefulShutdown()
}
