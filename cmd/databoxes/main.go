package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivoronin/databoxes/internal/client"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes.
const (
	ExitSuccess     = 0
	ExitInputError  = 2
	ExitRequestFail = 3
)

var rootCmd = &cobra.Command{
	Use:   "databoxes",
	Short: "Serve and query databoxes with filter expressions",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	var rerr *client.RequestError
	if errors.As(err, &rerr) || errors.Is(err, errRequest) {
		return ExitRequestFail
	}
	return ExitInputError
}

// errRequest marks failures talking to the server.
var errRequest = errors.New("request failed")
