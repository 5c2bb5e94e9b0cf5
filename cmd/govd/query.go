package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/treasurydao/governance/app"
	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov"
)

const (
	flagStatus = "status"
	flagLimit  = "limit"
)

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read-only queries against the governance store",
	}
	cmd.AddCommand(
		queryByIDCmd("proposal", "Show one proposal", gov.QueryProposal),
		queryProposalsCmd(),
		queryPlainCmd("proposal-ids", "List all proposal ids in insertion order", gov.QueryProposalIDs),
		queryVoteCmd(),
		queryByIDCmd("votes", "List the votes on a proposal", gov.QueryVotes),
		queryByIDCmd("results", "Show per-option vote counts", gov.QueryResults),
		queryByIDCmd("options", "Show a proposal's option labels", gov.QueryOptions),
		queryByIDCmd("detailed", "Show labeled counts and quorum standing", gov.QueryDetailed),
		queryByIDCmd("winner", "Show the winning option of a decided proposal", gov.QueryWinner),
		queryByIDCmd("quorum", "Show the live quorum standing", gov.QueryQuorum),
		queryPlainCmd("stats", "Summarize the governance store", gov.QueryStats),
		queryPlainCmd("total-voters", "Show the registry size", gov.QueryTotalVoters),
	)
	return cmd
}

func runQuery(a *app.GovernanceApp, path string, params interface{}) error {
	var req []byte
	if params != nil {
		var err error
		req, err = a.Codec().MarshalJSON(params)
		if err != nil {
			return err
		}
	}
	res, qerr := a.Query([]string{path}, req)
	if qerr != nil {
		return qerr
	}
	fmt.Println(string(res))
	return nil
}

func queryPlainCmd(use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.GovernanceApp) error {
				return runQuery(a, path, nil)
			})
		},
	}
}

func queryByIDCmd(use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [proposal-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proposalID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				return runQuery(a, path, gov.QueryProposalParams{ProposalID: proposalID})
			})
		},
	}
}

func queryProposalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "List proposals, optionally filtered by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			statusStr, err := cmd.Flags().GetString(flagStatus)
			if err != nil {
				return err
			}
			status, err := gov.ProposalStatusFromString(statusStr)
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt64(flagLimit)
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				return runQuery(a, gov.QueryProposals, gov.QueryProposalsParams{Status: status, NumLatest: limit})
			})
		},
	}
	cmd.Flags().String(flagStatus, "", "Active|Passed|Rejected|Executed|Expired")
	cmd.Flags().Int64(flagLimit, 0, "return at most this many proposals")
	return cmd
}

func queryVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote [proposal-id] [voter]",
		Short: "Show one account's vote on a proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			proposalID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			voter, err := types.AccAddressFromHex(args[1])
			if err != nil {
				return err
			}
			return withApp(func(a *app.GovernanceApp) error {
				return runQuery(a, gov.QueryVote, gov.QueryVoteParams{ProposalID: proposalID, Voter: voter})
			})
		},
	}
}
