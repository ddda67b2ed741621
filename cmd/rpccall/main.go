package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/eth-test-rpc/config"
	"github.com/status-im/eth-test-rpc/rpcclient"
)

func main() {
	// Parse command line flags
	networksPath := flag.String("networks", os.Getenv(config.EnvNetworks), "path to networks JSON")
	network := flag.String("network", os.Getenv(config.EnvNetwork), "network name to target")
	method := flag.String("method", "eth_blockNumber", "JSON-RPC method to call")
	timeout := flag.Duration("timeout", 30*time.Second, "call timeout")
	flag.Parse()

	settings, err := config.Resolve(*networksPath, *network, os.Getenv(config.EnvDebug))
	if err != nil {
		log.Fatalf("failed to resolve settings: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Remaining arguments become string parameters
	params := make([]interface{}, 0, flag.NArg())
	for _, arg := range flag.Args() {
		params = append(params, arg)
	}

	client := rpcclient.New(settings, logger)
	logger.Info("dispatching RPC call",
		zap.String("endpoint", settings.Endpoint.URL),
		zap.String("method", *method),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := client.Send(ctx, *method, params...)
	if err != nil {
		logger.Fatal("RPC call failed", zap.Error(err))
	}
	if result == nil {
		logger.Warn("endpoint returned no result member")
		return
	}

	fmt.Println(string(result))
}
