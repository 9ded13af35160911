package recommendation

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderText writes the operator-facing recommendation:
//
//	### Chaos Agent Recommendation: STALL ###
//	Invariant to test: Massive network stall (80% drop) requiring Spike recovery
//	Command:
//	  scripts/chaos/netns_chaos.sh pair tcp 42 25
//
//	To replay this exact run, use seed: 42
func (r *Recommendation) RenderText(w io.Writer) error {
	title := cases.Upper(language.Und).String(r.Intent.String())

	_, err := fmt.Fprintf(w,
		"### Chaos Agent Recommendation: %s ###\n"+
			"Invariant to test: %s\n"+
			"Command:\n"+
			"  %s\n"+
			"\n"+
			"To replay this exact run, use seed: %s\n",
		title, r.Invariant, r.CommandLine, r.Seed)
	return err
}
