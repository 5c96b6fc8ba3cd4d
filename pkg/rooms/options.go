package rooms

import (
	"github.com/dd0wney/roomgraph/pkg/algorithms"
	"github.com/dd0wney/roomgraph/pkg/validation"
)

// Default detection parameters, matching the rest of the pipeline.
const (
	DefaultAreaThreshold      = 100.0
	DefaultOuterBoundaryRatio = 1.5
)

// Options configures a detection run.
type Options struct {
	// AreaThreshold discards cycles whose shoelace area is below it.
	AreaThreshold float64
	// OuterBoundaryRatio controls removal of the building envelope: the
	// single largest cycle is dropped iff its area exceeds the
	// second-largest area times this ratio. Must be greater than 1.
	OuterBoundaryRatio float64
	// DoorGapThreshold is the maximum distance between dangling wall
	// endpoints to bridge as a doorway. Zero disables bridging.
	DoorGapThreshold float64
	// Limits bounds cycle enumeration.
	Limits algorithms.Limits
}

// DefaultOptions returns the standard detection parameters.
func DefaultOptions() Options {
	return Options{
		AreaThreshold:      DefaultAreaThreshold,
		OuterBoundaryRatio: DefaultOuterBoundaryRatio,
		DoorGapThreshold:   0,
		Limits:             algorithms.DefaultLimits(),
	}
}

// Validate checks that the options are internally consistent.
func (o Options) Validate() error {
	return validation.NewConfigValidator("Options").
		PositiveFloat("AreaThreshold", o.AreaThreshold).
		NonNegativeFloat("DoorGapThreshold", o.DoorGapThreshold).
		FloatAbove("OuterBoundaryRatio", o.OuterBoundaryRatio, 1).
		PositiveInt("Limits.MaxCycles", o.Limits.MaxCycles).
		PositiveInt("Limits.MaxCycleLength", o.Limits.MaxCycleLength).
		Validate()
}
