// Package cli implements the command-line interface for chaos-agent.
//
// # Overview
//
// chaos-agent turns a failure intent into a reproducible invocation of the
// netns_chaos.sh fault-injection tool. It never runs the tool itself: it
// prints the invariant being probed and the exact command, keyed by a seed
// the operator can pass back to replay the run.
//
// # Usage
//
//	chaos-agent [options] <intent>
//
// Intents: stall, flap, churn, storm.
//
//	chaos-agent stall
//	chaos-agent --topology pair --transport tcp --seed 42 stall
//	chaos-agent --format yaml --output rec.yaml storm
//	chaos-agent --list-intents
//
// Output (text format):
//
//	### Chaos Agent Recommendation: STALL ###
//	Invariant to test: Massive network stall (80% drop) requiring Spike recovery
//	Command:
//	  scripts/chaos/netns_chaos.sh pair tcp 42 25
//
//	To replay this exact run, use seed: 42
//
// # Flags
//
//	--topology      pair|line (default: line)
//	--transport     tcp|quic (default: quic)
//	--seed          integer seed of any size; random in [1, 10000] when omitted
//	--tool          fault-injection tool path (default: scripts/chaos/netns_chaos.sh)
//	--format, -t    text|json|yaml (default: text)
//	--output, -o    output file path (default: stdout)
//	--metrics-file  Prometheus textfile-collector output path
//	--list-intents  print the scenario catalog and exit
//	--debug         enable debug logging
//	--log-json      output logs in JSON format
//	--help, -h      show help
//	--version, -v   show version information
//
// # Environment Variables
//
//	CHAOS_AGENT_TOPOLOGY   default for --topology
//	CHAOS_AGENT_TRANSPORT  default for --transport
//	CHAOS_AGENT_TOOL       default for --tool
//	LOG_LEVEL              logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  Internal error (catalog gap, unwritable output)
//	2  Invalid argument (unknown intent/topology/transport/format, malformed seed or flag)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/hypha/chaos-agent/pkg/cli.version=1.0.0'"
package cli
