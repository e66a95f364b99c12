// Command chainctl probes the configured chains and reports their health.
//
//	chainctl [--testnet] [--timeout 10s] [--json] [chain...]
//
// It exits 1 when any probed chain is unreachable.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"phygital/internal/phygital/chain"
	"phygital/internal/phygital/util"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("chainctl", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	testnet := flags.Bool("testnet", false, "probe the testnet variant of each chain")
	timeout := flags.Duration("timeout", chain.DefaultTimeout, "deadline for each RPC call")
	asJSON := flags.Bool("json", false, "print reports as JSON")
	envFile := flags.String("env-file", ".env", "dotenv file to load when present")
	logLevel := flags.String("log-level", "error", "log level (debug, info, warn, error)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: chainctl [flags] [chain...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(stderr, "chainctl: %v\n", err)
		return 2
	}
	// stdout carries the report only
	util.InitLoggerTo(stderr, *logLevel)

	registry, err := chain.NewRegistryFromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "chainctl: %v\n", err)
		return 2
	}

	keys := flags.Args()
	if len(keys) == 0 {
		keys = registry.Keys()
	}

	svc := chain.NewService(registry, chain.FamilyDialer{}, *timeout)
	svc.Logger = util.GetLogger()

	reports := probe(context.Background(), svc, keys, *testnet)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			fmt.Fprintf(stderr, "chainctl: %v\n", err)
			return 2
		}
	} else {
		printTable(stdout, reports)
	}

	for _, r := range reports {
		if !r.Connected {
			return 1
		}
	}
	return 0
}

// probe runs CheckHealth for every key concurrently; reports keep the order of keys.
func probe(ctx context.Context, svc *chain.Service, keys []string, testnet bool) []chain.HealthReport {
	reports := make([]chain.HealthReport, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			reports[i] = svc.CheckHealth(ctx, chain.Ref{Chain: key, Testnet: testnet})
		}(i, key)
	}
	wg.Wait()
	return reports
}

func printTable(w io.Writer, reports []chain.HealthReport) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAIN\tNETWORK\tCHAIN ID\tSTATUS\tBLOCK\tLATENCY\tERROR")
	for _, r := range reports {
		network := "mainnet"
		if r.Testnet {
			network = "testnet"
		}
		status := "down"
		block := "-"
		if r.Connected {
			status = "up"
			block = fmt.Sprintf("%d", r.BlockNumber)
		}
		latency := (time.Duration(r.LatencyMS) * time.Millisecond).String()
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n", r.Chain, network, r.ChainID, status, block, latency, r.Error)
	}
	tw.Flush()
}
