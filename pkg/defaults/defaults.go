package defaults

// External tool
const (
	// ToolPath is the fault-injection script the generated command invokes.
	ToolPath = "scripts/chaos/netns_chaos.sh"
)

// Scenario selection defaults
const (
	// Topology is the network-namespace arrangement used when none is given.
	Topology = "line"

	// Transport is the protocol exercised when none is given.
	Transport = "quic"
)

// Seed bounds for generated seeds (inclusive).
const (
	MinSeed int64 = 1
	MaxSeed int64 = 10000
)

// Environment variables
const (
	EnvToolPath  = "CHAOS_AGENT_TOOL"
	EnvTopology  = "CHAOS_AGENT_TOPOLOGY"
	EnvTransport = "CHAOS_AGENT_TRANSPORT"
	EnvLogLevel  = "LOG_LEVEL"
)
