// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"radix-cli/internal/config"
	"radix-cli/internal/convert"
	"radix-cli/internal/sshserver"
)

var (
	serveHostFlag string
	servePortFlag int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversion sessions over SSH",
	Long: `Start an SSH server that runs the interactive conversion session for
each connection. Sessions are independent and stateless; stopping the
server (Ctrl+C) drains open connections first.

Connect with:
  ssh -p <port> <host>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHostFlag, "host", "", "address to bind (overrides config)")
	serveCmd.Flags().IntVar(&servePortFlag, "port", -1, "port to listen on (overrides config)")
}

// runServe starts the SSH server and blocks until the command's context
// is cancelled (signal) or the server fails.
func runServe(cmd *cobra.Command) error {
	host := cfg.Serve.Host
	if serveHostFlag != "" {
		host = serveHostFlag
	}
	port := int(cfg.Serve.Port)
	if servePortFlag >= 0 {
		port = servePortFlag
	}

	keyPath := cfg.Serve.HostKeyPath
	if keyPath == "" {
		dir, err := config.Dir()
		if err != nil {
			return fmt.Errorf("failed to resolve host key location: %w", err)
		}
		keyPath = filepath.Join(dir, "ssh_host_ed25519")
	}

	logLevel := log.InfoLevel
	if verbose {
		logLevel = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "radix",
		Level:  logLevel,
	})

	engine := convert.EngineName(cfg.Convert.Engine)
	if engineFlag != "" {
		engine = convert.EngineName(engineFlag)
	}

	srv, err := sshserver.New(sshserver.Config{
		Host:           sshserver.HostAddress(host),
		Port:           sshserver.ListenPort(port),
		HostKeyPath:    keyPath,
		NativeWordBits: int(cfg.Convert.NativeWordBits),
	}, convert.SelectEngine(engine), logger)
	if err != nil {
		return err
	}

	if err := srv.Start(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("listening on ")+ValueStyle.Render(srv.Addr()))

	<-cmd.Context().Done()
	logger.Info("shutting down")
	if err := srv.Stop(); err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}
