package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/scalatools/sbtup/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DeclarationBuilder helps create test declarations with a fluent interface.
type DeclarationBuilder struct {
	*testkit.BaseBuilder
	group    string
	artifact string
	scope    string
	cross    bool
	version  string
	span     entities.Span
	filePath string
	viaVal   bool
	valName  string
}

// NewDeclarationBuilder creates a new declaration builder with sensible defaults.
func NewDeclarationBuilder() *DeclarationBuilder {
	return &DeclarationBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		group:       "org.example",
		artifact:    "lib",
		version:     "1.0.0",
		span:        entities.Span{Start: 0, End: 7},
		filePath:    "build.sbt",
	}
}

// WithGroup sets the coordinate group.
func (b *DeclarationBuilder) WithGroup(group string) *DeclarationBuilder {
	b.group = group
	return b
}

// WithArtifact sets the coordinate artifact.
func (b *DeclarationBuilder) WithArtifact(artifact string) *DeclarationBuilder {
	b.artifact = artifact
	return b
}

// WithScope sets the coordinate scope.
func (b *DeclarationBuilder) WithScope(scope string) *DeclarationBuilder {
	b.scope = scope
	return b
}

// CrossBuilt marks the coordinate as cross-built.
func (b *DeclarationBuilder) CrossBuilt() *DeclarationBuilder {
	b.cross = true
	return b
}

// WithVersion sets the declared version.
func (b *DeclarationBuilder) WithVersion(version string) *DeclarationBuilder {
	b.version = version
	return b
}

// WithSpan sets the source span of the version literal.
func (b *DeclarationBuilder) WithSpan(start, end int) *DeclarationBuilder {
	b.span = entities.Span{Start: start, End: end}
	return b
}

// WithFilePath sets the file path.
func (b *DeclarationBuilder) WithFilePath(path string) *DeclarationBuilder {
	b.filePath = path
	return b
}

// ViaVal marks the declaration as resolved through a val definition.
func (b *DeclarationBuilder) ViaVal(name string) *DeclarationBuilder {
	b.viaVal = true
	b.valName = name
	return b
}

// Build creates the declaration (satisfies testkit.Builder interface).
func (b *DeclarationBuilder) Build() interface{} {
	return b.BuildDeclaration()
}

// BuildDeclaration creates the declaration with a concrete return type.
func (b *DeclarationBuilder) BuildDeclaration() entities.Declaration {
	return entities.Declaration{
		Coordinate: entities.Coordinate{
			Group:      b.group,
			Artifact:   b.artifact,
			Scope:      b.scope,
			CrossBuilt: b.cross,
		},
		Version:  b.version,
		Span:     b.span,
		FilePath: b.filePath,
		ViaVal:   b.viaVal,
		ValName:  b.valName,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DeclarationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.group = "org.example"
	b.artifact = "lib"
	b.scope = ""
	b.cross = false
	b.version = "1.0.0"
	b.span = entities.Span{Start: 0, End: 7}
	b.filePath = "build.sbt"
	b.viaVal = false
	b.valName = ""
	return b
}

// Clone creates a deep copy of the DeclarationBuilder.
func (b *DeclarationBuilder) Clone() testkit.Builder {
	return &DeclarationBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		group:       b.group,
		artifact:    b.artifact,
		scope:       b.scope,
		cross:       b.cross,
		version:     b.version,
		span:        b.span,
		filePath:    b.filePath,
		viaVal:      b.viaVal,
		valName:     b.valName,
	}
}
