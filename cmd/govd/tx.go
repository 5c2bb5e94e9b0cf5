package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/treasurydao/governance/app"
	"github.com/treasurydao/governance/codec"
	"github.com/treasurydao/governance/x/gov"
)

const (
	flagStartingID   = "starting-proposal-id"
	flagDays         = "days"
	flagTitle        = "title"
	flagDescription  = "description"
	flagType         = "type"
	flagOption       = "option"
	flagVotingPeriod = "voting-period"
	flagQuorum       = "quorum"
	flagDelay        = "delay"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a fresh governance database",
		RunE: func(cmd *cobra.Command, args []string) error {
			startingID, err := cmd.Flags().GetInt64(flagStartingID)
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				state := gov.DefaultGenesisState()
				state.StartingProposalID = startingID
				if err := a.InitGenesis(state); err != nil {
					return err
				}
				fmt.Println("initialized governance database at tick 0")
				return nil
			})
		},
	}
	cmd.Flags().Int64(flagStartingID, 1, "id assigned to the first proposal")
	return cmd
}

func tickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Print the current tick",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.GovernanceApp) error {
				fmt.Println(a.CurrentTick())
				return nil
			})
		},
	}
}

func advanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance [ticks]",
		Short: "Advance the clock by a number of ticks (or --days)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := cmd.Flags().GetInt64(flagDays)
			if err != nil {
				return err
			}
			var ticks int64
			switch {
			case len(args) == 1 && days > 0:
				return fmt.Errorf("pass either a tick count or --%s, not both", flagDays)
			case len(args) == 1:
				ticks, err = strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
			case days > 0:
				ticks = days * gov.TicksPerDay
			default:
				return fmt.Errorf("pass a tick count or --%s", flagDays)
			}
			return withApp(func(a *app.GovernanceApp) error {
				tick, aerr := a.AdvanceTicks(ticks)
				if aerr != nil {
					return aerr
				}
				fmt.Printf("clock advanced to tick %d\n", tick)
				return nil
			})
		},
	}
	cmd.Flags().Int64(flagDays, 0, "advance by whole days instead of ticks")
	return cmd
}

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register --from as a voter",
		RunE: func(cmd *cobra.Command, args []string) error {
			voter, err := addressFromFlag(cmd)
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				return deliver(a, gov.NewMsgRegisterVoter(voter))
			})
		},
	}
	cmd.Flags().String(flagFrom, "", "hex address of the voter")
	return cmd
}

func submitProposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-proposal",
		Short: "Submit a proposal and open its voting window",
		RunE: func(cmd *cobra.Command, args []string) error {
			proposer, err := addressFromFlag(cmd)
			if err != nil {
				return err
			}
			title, err := cmd.Flags().GetString(flagTitle)
			if err != nil {
				return err
			}
			description, err := cmd.Flags().GetString(flagDescription)
			if err != nil {
				return err
			}
			typeStr, err := cmd.Flags().GetString(flagType)
			if err != nil {
				return err
			}
			proposalType, err := gov.ProposalTypeFromString(typeStr)
			if err != nil {
				return err
			}
			options, err := cmd.Flags().GetStringSlice(flagOption)
			if err != nil {
				return err
			}
			params, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				return deliver(a, gov.NewMsgSubmitProposal(title, description, proposalType, params, options, proposer))
			})
		},
	}
	cmd.Flags().String(flagFrom, "", "hex address of the proposer")
	cmd.Flags().String(flagTitle, "", "proposal title")
	cmd.Flags().String(flagDescription, "", "proposal description")
	cmd.Flags().String(flagType, "Treasury", "proposal type: Treasury|Governance|Technical|Other")
	cmd.Flags().StringSlice(flagOption, nil, "option label, repeatable (1 to 10)")
	cmd.Flags().Int(flagVotingPeriod, 7, "voting period in days: 3|7|14|30")
	cmd.Flags().Int(flagQuorum, 20, "quorum threshold in percent: 5|10|20|25")
	cmd.Flags().Int(flagDelay, 0, "execution delay in days: 0|1|2|7")
	return cmd
}

func paramsFromFlags(cmd *cobra.Command) (gov.Parameters, error) {
	days, err := cmd.Flags().GetInt(flagVotingPeriod)
	if err != nil {
		return gov.Parameters{}, err
	}
	votingPeriod, err := gov.VotingPeriodFromDays(days)
	if err != nil {
		return gov.Parameters{}, err
	}
	pct, err := cmd.Flags().GetInt(flagQuorum)
	if err != nil {
		return gov.Parameters{}, err
	}
	quorum, err := gov.QuorumThresholdFromPercentage(pct)
	if err != nil {
		return gov.Parameters{}, err
	}
	delayDays, err := cmd.Flags().GetInt(flagDelay)
	if err != nil {
		return gov.Parameters{}, err
	}
	delay, err := gov.ExecutionDelayFromDays(delayDays)
	if err != nil {
		return gov.Parameters{}, err
	}
	return gov.Parameters{
		VotingPeriod:    votingPeriod,
		QuorumThreshold: quorum,
		ExecutionDelay:  delay,
	}, nil
}

func voteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [proposal-id] [option-index]",
		Short: "Vote on an active proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			voter, err := addressFromFlag(cmd)
			if err != nil {
				return err
			}
			proposalID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			optionIndex, err := strconv.ParseUint(args[1], 10, 8)
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				return deliver(a, gov.NewMsgVote(voter, proposalID, uint8(optionIndex)))
			})
		},
	}
	cmd.Flags().String(flagFrom, "", "hex address of the voter")
	return cmd
}

func tallyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally [proposal-id]",
		Short: "Decide a proposal whose voting window has closed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := addressFromFlag(cmd)
			if err != nil {
				return err
			}
			proposalID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				return deliver(a, gov.NewMsgUpdateProposalStatus(caller, proposalID))
			})
		},
	}
	cmd.Flags().String(flagFrom, "", "hex address of the caller")
	return cmd
}

func executeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute [proposal-id]",
		Short: "Execute a passed proposal after its delay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := addressFromFlag(cmd)
			if err != nil {
				return err
			}
			proposalID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				return deliver(a, gov.NewMsgExecuteProposal(caller, proposalID))
			})
		},
	}
	cmd.Flags().String(flagFrom, "", "hex address of the caller")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the registry and id counter in genesis form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.GovernanceApp) error {
				state := a.ExportGenesis()
				bz, err := codec.MarshalJSONIndent(a.Codec(), state)
				if err != nil {
					return err
				}
				fmt.Println(string(bz))
				return nil
			})
		},
	}
}
