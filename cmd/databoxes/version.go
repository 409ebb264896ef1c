package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivoronin/databoxes/internal/version"
)

var (
	versionJSON   bool
	versionServer bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and optionally server version",
	Long: `Display the databoxes version. With --remote the server version is fetched
from its health check and compared with the client.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "Output in JSON format")
	versionCmd.Flags().BoolVar(&versionServer, "remote", false, "Also query the server version")
	addClientFlags(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := struct {
		Version string `json:"version"`
		Server  string `json:"server,omitempty"`
		Newer   string `json:"newer,omitempty"`
	}{
		Version: Version,
	}

	if versionServer {
		c, err := newClient()
		if err != nil {
			return err
		}
		sv, err := c.ServerVersion(cmd.Context())
		if err != nil {
			return requestFailed(err)
		}
		info.Server = sv
		switch version.Compare(Version, sv) {
		case -1:
			info.Newer = "server"
		case 1:
			info.Newer = "client"
		}
	}

	if versionJSON {
		out, err := json.Marshal(info)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "databoxes %s\n", info.Version)
	if info.Server != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "server %s\n", info.Server)
		if info.Newer != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is newer\n", info.Newer)
		}
	}
	return nil
}
