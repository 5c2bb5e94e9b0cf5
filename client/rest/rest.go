// Package rest exposes the governance queries over HTTP. Mutations
// stay on the CLI; the REST surface is read-only.
package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/treasurydao/governance/codec"
	"github.com/treasurydao/governance/types"
	"github.com/treasurydao/governance/x/gov"
)

// QueryFunc runs one governance query at the host's current tick.
type QueryFunc func(path []string, req []byte) ([]byte, types.Error)

// RegisterRoutes mounts the governance query routes on r.
func RegisterRoutes(r *mux.Router, cdc *codec.Codec, query QueryFunc) {
	h := handlers{cdc: cdc, query: query}

	r.HandleFunc("/gov/proposals", h.proposals).Methods("GET")
	r.HandleFunc("/gov/proposal-ids", h.plain(gov.QueryProposalIDs)).Methods("GET")
	r.HandleFunc("/gov/stats", h.plain(gov.QueryStats)).Methods("GET")
	r.HandleFunc("/gov/voters/total", h.plain(gov.QueryTotalVoters)).Methods("GET")

	r.HandleFunc("/gov/proposals/{proposal-id}", h.byProposal(gov.QueryProposal)).Methods("GET")
	r.HandleFunc("/gov/proposals/{proposal-id}/votes", h.byProposal(gov.QueryVotes)).Methods("GET")
	r.HandleFunc("/gov/proposals/{proposal-id}/votes/{voter}", h.vote).Methods("GET")
	r.HandleFunc("/gov/proposals/{proposal-id}/results", h.byProposal(gov.QueryResults)).Methods("GET")
	r.HandleFunc("/gov/proposals/{proposal-id}/options", h.byProposal(gov.QueryOptions)).Methods("GET")
	r.HandleFunc("/gov/proposals/{proposal-id}/detailed", h.byProposal(gov.QueryDetailed)).Methods("GET")
	r.HandleFunc("/gov/proposals/{proposal-id}/winner", h.byProposal(gov.QueryWinner)).Methods("GET")
	r.HandleFunc("/gov/proposals/{proposal-id}/quorum", h.byProposal(gov.QueryQuorum)).Methods("GET")
}

type handlers struct {
	cdc   *codec.Codec
	query QueryFunc
}

func (h handlers) run(w http.ResponseWriter, path string, params interface{}) {
	var req []byte
	if params != nil {
		var err error
		req, err = h.cdc.MarshalJSON(params)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	res, qerr := h.query([]string{path}, req)
	if qerr != nil {
		writeError(w, http.StatusInternalServerError, qerr.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(res)
}

// plain handles parameterless endpoints.
func (h handlers) plain(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.run(w, path, nil)
	}
}

// byProposal handles endpoints keyed by {proposal-id}.
func (h handlers) byProposal(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposalID, ok := parseProposalID(w, r)
		if !ok {
			return
		}
		h.run(w, path, gov.QueryProposalParams{ProposalID: proposalID})
	}
}

func (h handlers) proposals(w http.ResponseWriter, r *http.Request) {
	params := gov.QueryProposalsParams{}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status, err := gov.ProposalStatusFromString(statusStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		params.Status = status
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", limitStr))
			return
		}
		params.NumLatest = limit
	}
	h.run(w, gov.QueryProposals, params)
}

func (h handlers) vote(w http.ResponseWriter, r *http.Request) {
	proposalID, ok := parseProposalID(w, r)
	if !ok {
		return
	}
	voterStr := mux.Vars(r)["voter"]
	voter, err := types.AccAddressFromHex(voterStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid voter address %q", voterStr))
		return
	}
	h.run(w, gov.QueryVote, gov.QueryVoteParams{ProposalID: proposalID, Voter: voter})
}

func parseProposalID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["proposal-id"]
	proposalID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || proposalID < 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid proposal id %q", idStr))
		return 0, false
	}
	return proposalID, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, msg)
}
