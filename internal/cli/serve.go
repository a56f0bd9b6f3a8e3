package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/blockforge/blockforge/internal/api"
	"github.com/blockforge/blockforge/pkg/config"
	"github.com/blockforge/blockforge/pkg/io"
)

type serveOpts struct {
	addr string // overrides BLOCKFORGE_ADDR
}

// newServeCmd creates the serve command, which exposes a model file
// over the HTTP API. Settings come from BLOCKFORGE_-prefixed
// environment variables; --addr overrides the bind address.
func newServeCmd() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve a model file over HTTP",
		Long:  `Load a model file and expose it over a JSON HTTP API: snapshot import/export, block, port, and connection editing, auto-layout, and hit testing. The file is not written back; use GET /model to export the edited state.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.LoadServer()
			if err != nil {
				return err
			}
			if opts.addr != "" {
				cfg.Addr = opts.addr
			}

			m, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}

			server := api.New(m, logger)
			logger.Info("serving model", "file", args[0], "addr", cfg.Addr, "blocks", m.BlockCount())
			printInfo("Listening on http://%s", cfg.Addr)

			if err := http.ListenAndServe(cfg.Addr, server.Router()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "bind address (default from BLOCKFORGE_ADDR)")

	return cmd
}
