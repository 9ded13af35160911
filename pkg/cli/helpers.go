package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	chaoserrors "github.com/hypha/chaos-agent/pkg/errors"
	"github.com/hypha/chaos-agent/pkg/intent"
	"github.com/hypha/chaos-agent/pkg/recommendation"
	"github.com/hypha/chaos-agent/pkg/seed"
	"github.com/hypha/chaos-agent/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String(flagFormat))
	if outFormat.IsUnknown() {
		return "", chaoserrors.New(chaoserrors.ErrCodeInvalidArgument,
			fmt.Sprintf("unknown output format: %q, valid formats are: %v", outFormat, serializer.SupportedFormats()))
	}
	return outFormat, nil
}

// parseSeed parses an operator supplied seed. Any base-10 integer is
// accepted, however large.
func parseSeed(s string) (*seed.Value, error) {
	v, err := seed.ParseValue(s)
	if err != nil {
		return nil, chaoserrors.Wrap(chaoserrors.ErrCodeInvalidArgument,
			fmt.Sprintf("invalid seed: %q, must be an integer", s), err)
	}
	return ptr.To(v), nil
}

// buildRequestFromCmd validates the positional intent and the scenario
// flags and assembles a recommendation.Request.
func buildRequestFromCmd(cmd *cli.Command) (recommendation.Request, error) {
	var req recommendation.Request

	switch n := cmd.Args().Len(); {
	case n == 0:
		return req, chaoserrors.New(chaoserrors.ErrCodeInvalidArgument,
			fmt.Sprintf("missing required argument: intent, supported values: %v", intent.SupportedIntents()))
	case n > 1:
		return req, chaoserrors.New(chaoserrors.ErrCodeInvalidArgument,
			fmt.Sprintf("unexpected arguments: %v", cmd.Args().Tail()))
	}

	var err error
	if req.Intent, err = intent.ParseIntent(cmd.Args().First()); err != nil {
		return req, err
	}
	if req.Topology, err = intent.ParseTopology(cmd.String(flagTopology)); err != nil {
		return req, err
	}
	if req.Transport, err = intent.ParseTransport(cmd.String(flagTransport)); err != nil {
		return req, err
	}
	if cmd.IsSet(flagSeed) {
		if req.Seed, err = parseSeed(cmd.String(flagSeed)); err != nil {
			return req, err
		}
	}

	return req, nil
}
