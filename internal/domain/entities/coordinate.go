package entities

// Coordinate is the identity of a dependency: organization (group),
// artifact name, and an optional configuration scope (Test, Provided, ...).
// Equality is exact-string equality on all fields.
type Coordinate struct {
	Group      string
	Artifact   string
	Scope      string // Empty for the default (Compile) configuration
	CrossBuilt bool   // Declared with %% or %%% (Scala binary-version suffixed)
}

// Key returns a stable cache/map key for the coordinate.
func (c Coordinate) Key() string {
	key := c.Group + ":" + c.Artifact
	if c.Scope != "" {
		key += ":" + c.Scope
	}
	return key
}

// String renders the coordinate the way it appears in an sbt build file.
func (c Coordinate) String() string {
	sep := " % "
	if c.CrossBuilt {
		sep = " %% "
	}
	return c.Group + sep + c.Artifact
}
