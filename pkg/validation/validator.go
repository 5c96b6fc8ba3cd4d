package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/roomgraph/pkg/geometry"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Input limits enforced at the service boundary. The detection core
	// assumes clean finite reals; everything here runs before it.
	MaxWalls      = 10000
	MaxCoordinate = 1000000.0
	MaxSourceTag  = 50
)

func init() {
	validate = validator.New()
}

// DetectRequest is a request to detect rooms in a wall list. The threshold
// fields are optional overrides of the server defaults.
type DetectRequest struct {
	Walls              []geometry.Wall `json:"walls" validate:"required,min=1,max=10000"`
	AreaThreshold      *float64        `json:"area_threshold" validate:"omitempty,gt=0"`
	DoorGapThreshold   *float64        `json:"door_gap_threshold" validate:"omitempty,gte=0"`
	OuterBoundaryRatio *float64        `json:"outer_boundary_ratio" validate:"omitempty,gt=1"`
}

// ValidateDetectRequest validates a detection request: wall count cap,
// finite coordinates, coordinate magnitude cap, and threshold ranges.
func ValidateDetectRequest(req *DetectRequest) error {
	if req == nil {
		return errors.New("detect request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if len(req.Walls) > MaxWalls {
		return fmt.Errorf("Walls: maximum %d walls allowed, got %d", MaxWalls, len(req.Walls))
	}

	for i, wall := range req.Walls {
		if err := validateWall(&wall); err != nil {
			return fmt.Errorf("Walls: wall at index %d: %w", i, err)
		}
	}

	return nil
}

// validateWall checks a single wall's coordinates and metadata.
func validateWall(wall *geometry.Wall) error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"start.x", wall.Start.X},
		{"start.y", wall.Start.Y},
		{"end.x", wall.End.X},
		{"end.y", wall.End.Y},
	} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%s is not a finite number", c.name)
		}
		if math.Abs(c.value) > MaxCoordinate {
			return fmt.Errorf("%s magnitude exceeds %g", c.name, MaxCoordinate)
		}
	}

	if len(wall.Source) > MaxSourceTag {
		return fmt.Errorf("source tag exceeds maximum length of %d characters", MaxSourceTag)
	}

	return nil
}

// formatValidationError converts validator errors into user-facing messages.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Errorf("%s: failed validation rule '%s'", first.Field(), first.Tag())
	}
	return err
}
