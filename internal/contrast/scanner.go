package contrast

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
)

// ErrRootNotDir is returned when the scan root is missing or not a directory
var ErrRootNotDir = errors.New("scan root is not a directory")

var (
	// :root { ... } up to the first closing brace, may span lines
	rootBlockPattern = regexp.MustCompile(`:root\s*\{([^}]+)\}`)

	// --name: value; (value runs to the next semicolon, kept verbatim)
	declarationPattern = regexp.MustCompile(`--([a-zA-Z0-9_-]+)\s*:\s*([^;]+);`)

	// Only these extensions are opened (case-sensitive)
	scannedExtensions = []string{".html", ".css"}
)

// Scanner walks a directory tree and collects :root tokens
type Scanner struct {
	exclude   []string
	gitignore bool
	logger    *slog.Logger
}

// NewScanner creates a scanner from the given configuration
func NewScanner(config Config) *Scanner {
	return &Scanner{
		exclude:   config.Exclude,
		gitignore: config.RespectGitignore,
		logger:    loggerOrDiscard(config.Logger),
	}
}

// Scan walks root recursively and adds every token it finds to set.
// Unreadable files and directories are skipped; only a bad root fails the scan.
func (s *Scanner) Scan(root string, set *TokenSet) (*TokenSet, ScanResult, error) {
	var result ScanResult

	info, err := os.Stat(root)
	if err != nil {
		return set, result, fmt.Errorf("%w: %s: %w", ErrRootNotDir, root, err)
	}
	if !info.IsDir() {
		return set, result, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	for _, pattern := range s.exclude {
		if !doublestar.ValidatePattern(pattern) {
			return set, result, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	gi := s.loadGitIgnore(root)

	// WalkDir does not descend into a symlinked root; a trailing separator makes it follow the link
	walkRoot := root
	if link, err := os.Lstat(root); err == nil && link.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.logger.Debug("skipping unreadable path", "path", path, "error", walkErr)
			if d != nil && d.IsDir() && path != walkRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasScannedExtension(path) {
			return nil
		}

		if s.shouldSkipFile(root, path, gi) {
			result.Ignored++
			return nil
		}

		result.Files = append(result.Files, path)

		content, err := readSource(path)
		if err != nil {
			s.logger.Debug("skipping unreadable file", "path", path, "error", err)
			result.Skipped++
			return nil
		}

		before := set.Len()
		ExtractTokens(set, path, content)
		s.logger.Debug("scanned file", "path", path, "new_tokens", set.Len()-before)
		return nil
	})
	if err != nil {
		return set, result, fmt.Errorf("walk %s: %w", root, err)
	}

	return set, result, nil
}

// ScanSources extracts tokens from in-memory files, in order
func ScanSources(set *TokenSet, sources []Source) *TokenSet {
	for _, src := range sources {
		ExtractTokens(set, src.Path, src.Content)
	}
	return set
}

// ExtractTokens adds every --name: value; declaration found inside a :root block of content
func ExtractTokens(set *TokenSet, path string, content []byte) *TokenSet {
	pos := newPositionTracker(content)
	for _, block := range rootBlockPattern.FindAllSubmatchIndex(content, -1) {
		bodyStart, bodyEnd := block[2], block[3]
		body := content[bodyStart:bodyEnd]

		for _, decl := range declarationPattern.FindAllSubmatchIndex(body, -1) {
			name := strings.TrimSpace(string(body[decl[2]:decl[3]]))
			value := strings.TrimSpace(string(body[decl[4]:decl[5]]))

			// Column of the leading "--"
			line, col := pos.at(bodyStart + decl[0])

			set.Set(Token{
				Name:   name,
				Value:  value,
				File:   path,
				Line:   line,
				Column: col,
			})
		}
	}
	return set
}

// positionTracker maps increasing byte offsets to 1-based line and column.
// Each lookup only scans the bytes since the previous one.
type positionTracker struct {
	content []byte
	offset  int
	line    int
	col     int
}

func newPositionTracker(content []byte) *positionTracker {
	return &positionTracker{content: content, line: 1, col: 1}
}

// at returns the position of offset; offsets must not decrease between calls
func (p *positionTracker) at(offset int) (line, col int) {
	if offset > p.offset {
		// Capped capacity so parse.Input copies instead of writing its NULL sentinel into content
		segment := p.content[p.offset:offset:offset]
		relLine, relCol, _ := parse.Position(bytes.NewBuffer(segment), len(segment))
		if relLine == 1 {
			p.col += relCol - 1
		} else {
			p.line += relLine - 1
			p.col = relCol
		}
		p.offset = offset
	}
	return p.line, p.col
}

// readSource reads a file and rejects content that is not valid UTF-8
func readSource(path string) ([]byte, error) {
	// #nosec G304 - path comes from walking the configured root
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, errors.New("invalid UTF-8")
	}
	return content, nil
}

// hasScannedExtension checks for .html or .css
func hasScannedExtension(path string) bool {
	for _, ext := range scannedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// loadGitIgnore compiles root/.gitignore when enabled.
// Gracefully degrades if the file doesn't exist.
func (s *Scanner) loadGitIgnore(root string) *ignore.GitIgnore {
	if !s.gitignore {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		s.logger.Debug("no usable .gitignore", "root", root, "error", err)
		return nil
	}
	return gi
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Exclude patterns (doublestar, relative to root)
// 2. .gitignore (only when enabled)
func (s *Scanner) shouldSkipFile(root, path string, gi *ignore.GitIgnore) bool {
	if len(s.exclude) == 0 && gi == nil {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return gi != nil && gi.MatchesPath(rel)
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
