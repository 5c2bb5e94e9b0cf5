package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/treasurydao/governance/client/rest"
	"github.com/treasurydao/governance/pubsub"
	"github.com/treasurydao/governance/x/gov"
)

const (
	flagListenAddr       = "laddr"
	flagMetricsNamespace = "metrics-namespace"

	eventLogClientID = pubsub.ClientID("govd-event-log")
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only query API and Prometheus metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			laddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return err
			}
			namespace, err := cmd.Flags().GetString(flagMetricsNamespace)
			if err != nil {
				return err
			}

			logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
			publisher := pubsub.NewPublisher("gov-events", logger.With("module", "pubsub"))
			if err := publisher.Start(); err != nil {
				return err
			}
			defer publisher.Stop()
			if err := subscribeEventLog(publisher, logger.With("module", "events")); err != nil {
				return err
			}

			a, db, err := openApp(publisher, gov.PrometheusMetrics(namespace))
			if err != nil {
				return err
			}
			defer db.Close()

			router := mux.NewRouter()
			rest.RegisterRoutes(router, a.Codec(), a.Query)
			router.Handle("/metrics", promhttp.Handler())

			logger.Info("serving governance API", "laddr", laddr, "tick", a.CurrentTick())
			return http.ListenAndServe(laddr, router)
		},
	}
	cmd.Flags().String(flagListenAddr, "localhost:8080", "listen address")
	cmd.Flags().String(flagMetricsNamespace, "treasurydao", "prometheus namespace")
	return cmd
}

// subscribeEventLog mirrors every governance event into the log.
func subscribeEventLog(publisher *pubsub.Publisher, logger log.Logger) error {
	sub, err := publisher.NewSubscriber(eventLogClientID)
	if err != nil {
		return err
	}
	topics := []pubsub.Topic{
		gov.VoterRegisteredTopic,
		gov.ProposalCreatedTopic,
		gov.VoteCastTopic,
		gov.ProposalDecidedTopic,
		gov.ProposalExecutedTopic,
	}
	for _, topic := range topics {
		topic := topic
		if err := sub.Subscribe(topic, func(event pubsub.Event) {
			logger.Info("governance event", "topic", topic, "event", fmt.Sprintf("%+v", event))
		}); err != nil {
			return err
		}
	}
	return nil
}
