package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hypha/chaos-agent/pkg/catalog"
	"github.com/hypha/chaos-agent/pkg/defaults"
	chaoserrors "github.com/hypha/chaos-agent/pkg/errors"
	"github.com/hypha/chaos-agent/pkg/header"
	"github.com/hypha/chaos-agent/pkg/seed"
)

// runIDNamespace scopes the name-based run IDs.
var runIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://"+header.APIDomain+"/run"))

// Option is a functional option for configuring a Builder.
type Option func(*Builder)

// WithVersion records the generator version in the header metadata.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.Version = version
	}
}

// WithToolPath overrides the external tool path. Empty keeps the default.
func WithToolPath(path string) Option {
	return func(b *Builder) {
		if path != "" {
			b.ToolPath = path
		}
	}
}

// WithCatalog sets the scenario catalog. Without it Build loads the
// embedded one.
func WithCatalog(c *catalog.Catalog) Option {
	return func(b *Builder) {
		b.catalog = c
	}
}

// WithSeedResolver sets the resolver used when the request has no seed.
func WithSeedResolver(r *seed.Resolver) Option {
	return func(b *Builder) {
		if r != nil {
			b.resolver = r
		}
	}
}

// Builder composes catalog entries, seeds and the operator's topology and
// transport choice into Recommendations.
type Builder struct {
	Version  string
	ToolPath string

	catalog  *catalog.Catalog
	resolver *seed.Resolver
}

// NewBuilder returns a Builder with the default tool path and a resolver
// backed by the global random generator.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		ToolPath: defaults.ToolPath,
		resolver: seed.NewResolver(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates req, looks up the scenario for its intent, resolves the
// seed and returns the resulting Recommendation.
func (b *Builder) Build(ctx context.Context, req Request) (*Recommendation, error) {
	rec, err := b.build(ctx, req)
	if err != nil {
		recommendationErrorsTotal.WithLabelValues(string(chaoserrors.CodeOf(err))).Inc()
		return nil, err
	}
	recommendationsTotal.WithLabelValues(rec.Intent.String(), rec.Topology.String(), rec.Transport.String()).Inc()
	return rec, nil
}

func (b *Builder) build(ctx context.Context, req Request) (*Recommendation, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if !req.Topology.IsValid() {
		return nil, chaoserrors.New(chaoserrors.ErrCodeInvalidArgument,
			fmt.Sprintf("invalid topology: %q", req.Topology))
	}
	if !req.Transport.IsValid() {
		return nil, chaoserrors.New(chaoserrors.ErrCodeInvalidArgument,
			fmt.Sprintf("invalid transport: %q", req.Transport))
	}

	cat := b.catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Load(ctx); err != nil {
			return nil, fmt.Errorf("failed to load scenario catalog: %w", err)
		}
	}

	scenario, err := cat.Lookup(req.Intent)
	if err != nil {
		return nil, err
	}

	s := b.resolver.Resolve(req.Seed)
	if s.Generated {
		seedResolutionsTotal.WithLabelValues("generated").Inc()
	} else {
		seedResolutionsTotal.WithLabelValues("supplied").Inc()
	}

	slog.Debug("resolved scenario",
		"intent", req.Intent.String(),
		"topology", req.Topology.String(),
		"transport", req.Transport.String(),
		"seed", s.Value,
		"seed_generated", s.Generated,
		"duration_seconds", scenario.DurationSeconds,
	)

	argv := Command(b.ToolPath, req, s.Value, scenario.DurationSeconds)
	runID := RunID(req, s.Value)

	opts := []header.Option{
		header.WithKind(header.KindRecommendation),
		header.WithMetadata(MetadataRunID, runID),
	}
	if b.Version != "" {
		opts = append(opts, header.WithMetadata(MetadataGenerator, "chaos-agent/"+b.Version))
	}

	return &Recommendation{
		Header:          *header.New(opts...),
		Intent:          req.Intent,
		Topology:        req.Topology,
		Transport:       req.Transport,
		Seed:            s.Value,
		SeedGenerated:   s.Generated,
		DurationSeconds: scenario.DurationSeconds,
		Invariant:       scenario.Invariant,
		Tool:            b.ToolPath,
		Command:         argv,
		CommandLine:     strings.Join(argv, " "),
		RunID:           runID,
	}, nil
}

// Command returns the external tool argv in its fixed positional order:
// tool, topology, transport, seed, duration.
func Command(tool string, req Request, seedValue seed.Value, durationSeconds int) []string {
	return []string{
		tool,
		req.Topology.String(),
		req.Transport.String(),
		seedValue.String(),
		strconv.Itoa(durationSeconds),
	}
}

// RunID returns the name-based UUID identifying a replayable run.
func RunID(req Request, seedValue seed.Value) string {
	name := fmt.Sprintf("%s/%s/%s/%s", req.Intent, req.Topology, req.Transport, seedValue)
	return uuid.NewSHA1(runIDNamespace, []byte(name)).String()
}
