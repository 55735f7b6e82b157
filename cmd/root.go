package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "am",
		Short:         "Assetmart CLI (am): browse and trade digital assets",
		Long:          "am (Assetmart CLI) signs in to the Assetmart marketplace, browses listings, manages offers and orders, and keeps a persisted session that stays consistent across processes.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newSessionCmd(app),
		newListingCmd(app),
		newOfferCmd(app),
		newOrderCmd(app),
		newFAQCmd(app),
		newConversationCmd(app),
	)

	return rootCmd
}
