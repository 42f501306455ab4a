package config

// BinaryMode distinguishes the two build variants of cppdocs.
// It is fixed at build time and never changes at runtime.
type BinaryMode string

const (
	// ModeFull builds write documentation and the search index to a local
	// output directory, so output_dir is mandatory.
	ModeFull BinaryMode = "full"
	// ModeClient builds hand output off to the hosted service; a local
	// output_dir is accepted but unused.
	ModeClient BinaryMode = "client"
)

// Config is the resolved runtime configuration for a single cppdocs run.
// It is built once by Resolver.Resolve and treated as read-only afterwards.
// Downstream consumers must check Valid before using any other field.
type Config struct {
	ToolVersion string     // cppdocs version, from build metadata
	RootDir     string     // absolute path of the directory containing .cppdocs.toml
	Mode        BinaryMode // build variant, fixed per binary

	CompileCommandsPath string // compilation database, verified to be a regular file
	OutputDir           string // required for ModeFull, discouraged for ModeClient

	ProjectName    string
	ProjectVersion string
	GitRepoURL     string // empty, or ends with "/"
	NumThreads     int    // 0 means "use all available"

	UseSystemIncludes bool
	// IncludePaths is the header search list in search order: paths probed
	// from the system compiler first, then user-declared paths in
	// declaration order.
	IncludePaths []string

	IgnorePaths          []string // substring/glob patterns excluding files from indexing
	IgnorePrivateMembers bool
	IgnorePlainComments  bool

	Homepage      string
	MarkdownPaths []string // each verified to be an existing regular file

	DebugLimitNumIndexedFiles int // 0 means unlimited

	Timestamp string // resolution time, fixed UTC format

	// Valid is true only when every mandatory resolution step succeeded.
	Valid bool
}
