package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dhamidi/graphlet/ui"
	"github.com/spf13/cobra"
)

func newServeCmd(g *globals) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the completion API and playground over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = g.config.Serve.Addr
			}

			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Starting server at http://%s\n", displayAddr)

			server := &http.Server{
				Addr:              addr,
				Handler:           ui.NewServer(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return server.ListenAndServe()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")

	return cmd
}
