package commands

// BuildEditPlans exports buildEditPlans for testing.
var BuildEditPlans = buildEditPlans //nolint:gochecknoglobals // test export

// DistinctCoordinates exports distinctCoordinates for testing.
var DistinctCoordinates = distinctCoordinates //nolint:gochecknoglobals // test export
