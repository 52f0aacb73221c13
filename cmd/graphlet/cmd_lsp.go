package main

import (
	"errors"

	"github.com/dhamidi/graphlet/config"
	"github.com/dhamidi/graphlet/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(g *globals) *cobra.Command {
	var tcpAddr, wsAddr string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := g.config.LSP
			switch {
			case tcpAddr != "" && wsAddr != "":
				return errors.New("--tcp and --ws are mutually exclusive")
			case tcpAddr != "":
				settings.Transport = config.TransportTCP
				settings.Address = tcpAddr
			case wsAddr != "":
				settings.Transport = config.TransportWebSocket
				settings.Address = wsAddr
			}

			server := lsp.NewLSPServer(version, settings)
			return server.Run()
		},
	}

	cmd.Flags().StringVar(&tcpAddr, "tcp", "", "listen for a client on this TCP address instead of stdio")
	cmd.Flags().StringVar(&wsAddr, "ws", "", "listen for a client on this WebSocket address instead of stdio")

	return cmd
}
