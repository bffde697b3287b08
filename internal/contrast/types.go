package contrast

import "log/slog"

// Config holds checker configuration
type Config struct {
	Root             string       // Directory to scan (default: ".")
	Output           string       // Report path, relative to Root unless absolute
	Exclude          []string     // Doublestar patterns, matched against slash paths relative to Root
	RespectGitignore bool         // Skip files matched by Root/.gitignore
	ResolveAll       bool         // Resolve every discovered token, not just the pair vocabulary
	Logger           *slog.Logger // Debug logging (nil = discard)
}

// Token is a custom property declared in a :root block
type Token struct {
	Name   string // "primary" (without the leading --)
	Value  string // "#0a58ca" or "var(--brand)"
	File   string // Where the winning declaration was found
	Line   int    // 1-based
	Column int    // 1-based
}

// Source is an in-memory file fed to the scanner
type Source struct {
	Path    string
	Content []byte
}

// ScanResult contains the files visited by a directory scan
type ScanResult struct {
	Files   []string // Every .html/.css path visited, readable or not
	Skipped int      // Files visited but unreadable (I/O or encoding errors)
	Ignored int      // Files filtered out by exclude patterns or .gitignore
}

// Compliance holds independent WCAG pass flags for one ratio
type Compliance struct {
	AANormal  bool // >= 4.5
	AALarge   bool // >= 3.0
	AAANormal bool // >= 7.0
	AAALarge  bool // >= 4.5
}

// CheckResult is one evaluated foreground/background pair
type CheckResult struct {
	Foreground string
	Background string
	FG         Color
	BG         Color
	Ratio      float64 // Rounded to 2 decimals
	Compliance
}

// Report aggregates a full run
type Report struct {
	FilesScanned int
	Files        []string
	Tokens       *TokenSet
	Resolved     *ColorSet
	Checks       []CheckResult
	OutputPath   string // Set once the artifact has been written
}

// OutputFormat represents the console output format
type OutputFormat string

const (
	// OutputSummary prints the check summary and token listing (default)
	OutputSummary OutputFormat = "summary"
	// OutputJSON prints the report JSON to stdout
	OutputJSON OutputFormat = "json"
	// OutputMarkdown prints a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// Level is the WCAG level enforced by strict mode
type Level string

// Levels accepted by strict mode.
const (
	LevelAA      Level = "aa"
	LevelAALarge Level = "aa-large"
	LevelAAA     Level = "aaa"
)

// DefaultOutput is the report file name written inside the scanned root
const DefaultOutput = "contrast-report.json"
