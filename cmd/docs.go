package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suffiks/ingress-extension/config/crd"
	"github.com/suffiks/ingress-extension/docs"
)

// DocsCommand prints markdown documentation of the ingress spec
func DocsCommand() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   "docs",
		Short: "prints markdown documentation of the ingress spec",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return docs.Generate(cmd.OutOrStdout())
		},
	}, nil
}

// CRDCommand prints the XIngress CRD
func CRDCommand() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   "crd",
		Short: "prints the XIngress custom resource definition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(crd.XIngressCRD)
			return err
		},
	}, nil
}
