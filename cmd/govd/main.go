// govd drives a treasury governance store from the command line: it
// owns the database and the tick clock, and feeds messages and
// queries to the engine.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	dbm "github.com/tendermint/tm-db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/treasurydao/governance/app"
	"github.com/treasurydao/governance/pubsub"
	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov"
)

const (
	flagHome = "home"
	flagFrom = "from"
)

func main() {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:   "govd",
		Short: "Treasury governance daemon",
	}
	rootCmd.PersistentFlags().String(flagHome, defaultHome(), "directory for the governance database")
	if err := viper.BindPFlag(flagHome, rootCmd.PersistentFlags().Lookup(flagHome)); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		initCmd(),
		tickCmd(),
		advanceCmd(),
		registerCmd(),
		submitProposalCmd(),
		voteCmd(),
		tallyCmd(),
		executeCmd(),
		queryCmd(),
		exportCmd(),
		serveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".govd"
	}
	return filepath.Join(home, ".govd")
}

func openApp(publisher *pubsub.Publisher, metrics *gov.Metrics) (*app.GovernanceApp, dbm.DB, error) {
	dataDir := filepath.Join(viper.GetString(flagHome), "data")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, nil, err
	}
	db, err := dbm.NewGoLevelDB("governance", dataDir)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "gov")
	return app.NewGovernanceApp(logger, db, publisher, metrics), db, nil
}

// withApp opens the database, runs fn and closes it again; the
// one-shot commands all go through here.
func withApp(fn func(a *app.GovernanceApp) error) error {
	a, db, err := openApp(nil, nil)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(a)
}

func deliver(a *app.GovernanceApp, msg types.Msg) error {
	res := a.DeliverMsg(msg)
	if !res.IsOK() {
		return fmt.Errorf("msg failed (code %d): %s", res.Code, res.Log)
	}
	if len(res.Data) > 0 {
		fmt.Println(string(res.Data))
	}
	for _, tag := range res.Tags {
		fmt.Printf("%s: %s\n", tag.Key, tag.Value)
	}
	return nil
}

func addressFromFlag(cmd *cobra.Command) (types.AccAddress, error) {
	from, err := cmd.Flags().GetString(flagFrom)
	if err != nil {
		return nil, err
	}
	if from == "" {
		return nil, fmt.Errorf("--%s is required", flagFrom)
	}
	return types.AccAddressFromHex(from)
}
