package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hypha/chaos-agent/pkg/defaults"
	"github.com/hypha/chaos-agent/pkg/intent"
	"github.com/hypha/chaos-agent/pkg/serializer"
)

// Flag names
const (
	flagTopology    = "topology"
	flagTransport   = "transport"
	flagSeed        = "seed"
	flagTool        = "tool"
	flagFormat      = "format"
	flagOutput      = "output"
	flagMetricsFile = "metrics-file"
	flagListIntents = "list-intents"
	flagDebug       = "debug"
	flagLogJSON     = "log-json"
)

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagTopology,
			Value:   defaults.Topology,
			Usage:   fmt.Sprintf("network-namespace arrangement (%v)", intent.SupportedTopologies()),
			Sources: cli.EnvVars(defaults.EnvTopology),
		},
		&cli.StringFlag{
			Name:    flagTransport,
			Value:   defaults.Transport,
			Usage:   fmt.Sprintf("transport exercised by the fault injection (%v)", intent.SupportedTransports()),
			Sources: cli.EnvVars(defaults.EnvTransport),
		},
		&cli.StringFlag{
			Name:  flagSeed,
			Usage: fmt.Sprintf("integer seed to replay a run (default: random in [%d, %d])", defaults.MinSeed, defaults.MaxSeed),
		},
		&cli.StringFlag{
			Name:    flagTool,
			Value:   defaults.ToolPath,
			Usage:   "path of the fault-injection tool placed in the generated command",
			Sources: cli.EnvVars(defaults.EnvToolPath),
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"t"},
			Value:   string(serializer.FormatText),
			Usage:   fmt.Sprintf("output format (%v)", serializer.SupportedFormats()),
		},
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage:   "output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:  flagMetricsFile,
			Usage: "write Prometheus metrics in textfile-collector format to this path",
		},
		&cli.BoolFlag{
			Name:  flagListIntents,
			Usage: "list the available intents and their scenarios, then exit",
		},
		&cli.BoolFlag{
			Name:  flagDebug,
			Usage: "enable debug logging",
		},
		&cli.BoolFlag{
			Name:  flagLogJSON,
			Usage: "output logs in JSON format",
		},
	}
}
