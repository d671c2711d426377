package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pthm/promptopt/internal/config"
	"github.com/pthm/promptopt/internal/server"
	"github.com/pthm/promptopt/internal/tools"
	"github.com/pthm/promptopt/internal/toolserver"
	"github.com/spf13/cobra"
)

var (
	serveMode string
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the prompt tools over MCP or HTTP",
	Long: `Expose optimize_prompt and score_prompt to other programs.

In stdio mode (the default) the tools are served over the Model Context
Protocol on stdin/stdout; logs go to stderr. In http mode a JSON API
listens on --host:--port:

  GET  /          health check
  GET  /tools     tool catalog
  POST /optimize  {"raw_prompt": "...", "style": "creative"}
  POST /score     {"raw_prompt": "...", "improved_prompt": "..."}

DEPLOYMENT_MODE, HOST, PORT, LOG_LEVEL and LOG_JSON (or a .env file)
provide defaults; flags take precedence.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveMode, "mode", "", "Transport (stdio, http)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "HTTP listen host")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP listen port")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = serveMode
	}
	if flags.Changed("host") {
		cfg.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel, cfg.LogJSON)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := tools.DefaultRegistry()

	switch cfg.Mode {
	case config.ModeHTTP:
		log.Info("Starting HTTP server", "addr", cfg.Addr())
		return server.New(cfg.Addr(), registry, log).Start(ctx)
	default:
		return toolserver.New(registry, log).Listen(ctx, os.Stdin, os.Stdout)
	}
}
