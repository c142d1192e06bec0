package scanner

import (
	"regexp"
	"sort"
	"strings"

	"github.com/scalatools/sbtup/internal/domain/entities"
)

// Result is the outcome of scanning one build file.
type Result struct {
	// Declarations in file order (front-to-back by span offset).
	Declarations []entities.Declaration

	// ScalaVersion is the project's Scala version when the file pins one
	// via scalaVersion :=, either as a literal or through a val reference.
	// Empty otherwise.
	ScalaVersion string
}

var (
	// "group" % "artifact" % "1.2.3" [% Test]  — the version slot is either a
	// quoted literal or an identifier referencing a val definition.
	depPattern = regexp.MustCompile(
		`"([^"]+)"\s*(%%%|%%|%)\s*"([^"]+)"\s*%\s*(?:"([^"]*)"|([A-Za-z_][A-Za-z0-9_]*))` +
			`(?:\s*%\s*(?:"([^"]*)"|([A-Za-z][A-Za-z0-9]*)))?`)

	// val libVersion = "1.2.3" (optionally lazy)
	valPattern = regexp.MustCompile(`(?m)^[\t ]*(?:lazy\s+)?val\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*"([^"]*)"`)

	// scalaVersion := "2.13.8", or scalaVersion := scala3 with the version
	// defined by a val elsewhere in the file.
	scalaVersionPattern = regexp.MustCompile(`scalaVersion\s*:=\s*(?:"([^"]*)"|([A-Za-z_][A-Za-z0-9_]*))`)
)

type valDefinition struct {
	version string
	span    entities.Span
}

// Scan extracts dependency declarations from sbt build-configuration text.
// Spans include the surrounding quotes of the version literal; declarations
// whose version comes from a val reference carry the span of the definition
// site, so one edit updates every reference through the existing indirection.
// Unrelated statements and unrecognized dependency-like constructs are
// skipped; malformed text (an unterminated string literal) is a ParseError.
func Scan(content, path string) (Result, error) {
	commented, err := commentMask(content, path)
	if err != nil {
		return Result{}, err
	}

	vals := collectValDefinitions(content, commented)

	var decls []entities.Declaration
	for _, match := range depPattern.FindAllStringSubmatchIndex(content, -1) {
		if commented[match[0]] {
			continue
		}
		if decl, ok := buildDeclaration(content, path, match, vals); ok {
			decls = append(decls, decl)
		}
	}

	scalaVersion := ""
	if match := scalaVersionPattern.FindStringSubmatchIndex(content); match != nil && !commented[match[0]] {
		if match[2] >= 0 { // quoted version literal
			scalaVersion = content[match[2]:match[3]]
			decls = append(decls, entities.Declaration{
				Coordinate: scalaCoordinate(scalaVersion),
				Version:    scalaVersion,
				Span:       entities.Span{Start: match[2] - 1, End: match[3] + 1},
				FilePath:   path,
			})
		} else if def, ok := vals[content[match[4]:match[5]]]; ok {
			scalaVersion = def.version
			decls = append(decls, entities.Declaration{
				Coordinate: scalaCoordinate(scalaVersion),
				Version:    scalaVersion,
				Span:       def.span,
				FilePath:   path,
				ViaVal:     true,
				ValName:    content[match[4]:match[5]],
			})
		}
	}

	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].Span.Start < decls[j].Span.Start
	})

	return Result{Declarations: decls, ScalaVersion: scalaVersion}, nil
}

func buildDeclaration(content, path string, match []int, vals map[string]valDefinition) (entities.Declaration, bool) {
	coord := entities.Coordinate{
		Group:      content[match[2]:match[3]],
		Artifact:   content[match[6]:match[7]],
		CrossBuilt: content[match[4]:match[5]] != "%",
	}

	if g := firstGroup(match, 6, 7); g >= 0 {
		coord.Scope = content[match[g*2]:match[g*2+1]]
	}

	if match[8] >= 0 { // quoted version literal
		return entities.Declaration{
			Coordinate: coord,
			Version:    content[match[8]:match[9]],
			Span:       entities.Span{Start: match[8] - 1, End: match[9] + 1},
			FilePath:   path,
		}, true
	}

	// Version referenced by name: resolve against the val definitions of the
	// same file. An unknown name is an unrecognized construct, not an error.
	name := content[match[10]:match[11]]
	def, ok := vals[name]
	if !ok {
		return entities.Declaration{}, false
	}
	return entities.Declaration{
		Coordinate: coord,
		Version:    def.version,
		Span:       def.span,
		FilePath:   path,
		ViaVal:     true,
		ValName:    name,
	}, true
}

// firstGroup returns the index of the first non-empty capture group among the
// given group numbers, or -1.
func firstGroup(match []int, groups ...int) int {
	for _, g := range groups {
		if match[g*2] >= 0 {
			return g
		}
	}
	return -1
}

func collectValDefinitions(content string, commented []bool) map[string]valDefinition {
	vals := make(map[string]valDefinition)
	for _, match := range valPattern.FindAllStringSubmatchIndex(content, -1) {
		if commented[match[2]] {
			continue
		}
		name := content[match[2]:match[3]]
		vals[name] = valDefinition{
			version: content[match[4]:match[5]],
			span:    entities.Span{Start: match[4] - 1, End: match[5] + 1},
		}
	}
	return vals
}

// commentMask walks the text once, marking the bytes covered by line and
// block comments so matches inside them can be discarded, and failing with a
// ParseError when a string literal is still open at end of line.
func commentMask(content, path string) ([]bool, error) {
	mask := make([]bool, len(content)+1)
	line := 1
	inString := false
	inLineComment := false
	inBlockComment := false

	for i := 0; i < len(content); i++ {
		c := content[i]
		if c == '\n' {
			if inString {
				return nil, &entities.ParseError{Path: path, Line: line, Reason: "unterminated string literal"}
			}
			line++
			inLineComment = false
			continue
		}
		switch {
		case inLineComment:
			mask[i] = true
		case inBlockComment:
			mask[i] = true
			if c == '*' && i+1 < len(content) && content[i+1] == '/' {
				mask[i+1] = true
				i++
				inBlockComment = false
			}
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"' && strings.HasPrefix(content[i:], `"""`):
			// Triple-quoted strings may span lines; mask the whole region so
			// dependency-shaped text inside one is never extracted.
			end := strings.Index(content[i+3:], `"""`)
			if end < 0 {
				return nil, &entities.ParseError{Path: path, Line: line, Reason: "unterminated string literal"}
			}
			closing := i + 3 + end + 3
			for ; i < closing; i++ {
				mask[i] = true
				if content[i] == '\n' {
					line++
				}
			}
			i = closing - 1
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			mask[i] = true
			inLineComment = true
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			mask[i] = true
			inBlockComment = true
		}
	}
	if inString {
		return nil, &entities.ParseError{Path: path, Line: line, Reason: "unterminated string literal"}
	}
	return mask, nil
}

// scalaCoordinate maps a pinned Scala version to the standard-library
// artifact that publishes it, so the compiler itself participates in update
// resolution like any other dependency.
func scalaCoordinate(version string) entities.Coordinate {
	if strings.HasPrefix(version, "3.") {
		return entities.Coordinate{Group: "org.scala-lang", Artifact: "scala3-library_3"}
	}
	return entities.Coordinate{Group: "org.scala-lang", Artifact: "scala-library"}
}
