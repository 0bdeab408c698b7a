package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootCommand creates the extension command tree
func RootCommand() (*cobra.Command, error) {
	root := cobra.Command{
		Use:          "ingress-extension",
		Short:        "suffiks ingress extension",
		SilenceUsage: true,
	}

	for name, fn := range map[string]func() (*cobra.Command, error){
		"serve": ServeCommand,
		"docs":  DocsCommand,
		"crd":   CRDCommand,
	} {
		cmd, err := fn()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		root.AddCommand(cmd)
	}

	return &root, nil
}
