package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/dd0wney/roomgraph/pkg/geometry"
)

func validRequest() *DetectRequest {
	return &DetectRequest{
		Walls: []geometry.Wall{
			{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 100, Y: 0}},
		},
	}
}

// TestValidateDetectRequest_Valid verifies a well-formed request passes
func TestValidateDetectRequest_Valid(t *testing.T) {
	if err := ValidateDetectRequest(validRequest()); err != nil {
		t.Errorf("Expected valid request to pass, got %v", err)
	}
}

// TestValidateDetectRequest_Nil verifies a nil request is rejected
func TestValidateDetectRequest_Nil(t *testing.T) {
	if err := ValidateDetectRequest(nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

// TestValidateDetectRequest_EmptyWalls verifies a request without walls is
// rejected
func TestValidateDetectRequest_EmptyWalls(t *testing.T) {
	req := &DetectRequest{}
	if err := ValidateDetectRequest(req); err == nil {
		t.Error("Expected error for empty wall list")
	}
}

// TestValidateDetectRequest_TooManyWalls verifies the wall count cap
func TestValidateDetectRequest_TooManyWalls(t *testing.T) {
	req := &DetectRequest{
		Walls: make([]geometry.Wall, MaxWalls+1),
	}
	if err := ValidateDetectRequest(req); err == nil {
		t.Error("Expected error for too many walls")
	}
}

// TestValidateDetectRequest_NonFiniteCoordinates verifies NaN and Inf
// coordinates are rejected with the offending index
func TestValidateDetectRequest_NonFiniteCoordinates(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		req := validRequest()
		req.Walls = append(req.Walls, geometry.Wall{
			Start: geometry.Point{X: bad, Y: 0},
			End:   geometry.Point{X: 10, Y: 0},
		})

		err := ValidateDetectRequest(req)
		if err == nil {
			t.Fatalf("Expected error for coordinate %v", bad)
		}
		if !strings.Contains(err.Error(), "index 1") {
			t.Errorf("Expected error to name the wall index, got %v", err)
		}
	}
}

// TestValidateDetectRequest_CoordinateMagnitude verifies the coordinate cap
func TestValidateDetectRequest_CoordinateMagnitude(t *testing.T) {
	req := validRequest()
	req.Walls[0].End.Y = MaxCoordinate + 1

	if err := ValidateDetectRequest(req); err == nil {
		t.Error("Expected error for out-of-range coordinate")
	}

	req = validRequest()
	req.Walls[0].End.Y = -MaxCoordinate
	if err := ValidateDetectRequest(req); err != nil {
		t.Errorf("Expected coordinate at the cap to pass, got %v", err)
	}
}

// TestValidateDetectRequest_SourceTagLength verifies the source tag cap
func TestValidateDetectRequest_SourceTagLength(t *testing.T) {
	req := validRequest()
	req.Walls[0].Source = strings.Repeat("x", MaxSourceTag+1)

	if err := ValidateDetectRequest(req); err == nil {
		t.Error("Expected error for oversized source tag")
	}
}

// TestValidateDetectRequest_ThresholdOverrides verifies the optional
// override fields are range-checked
func TestValidateDetectRequest_ThresholdOverrides(t *testing.T) {
	bad := -5.0
	req := validRequest()
	req.AreaThreshold = &bad
	if err := ValidateDetectRequest(req); err == nil {
		t.Error("Expected error for negative area threshold")
	}

	one := 1.0
	req = validRequest()
	req.OuterBoundaryRatio = &one
	if err := ValidateDetectRequest(req); err == nil {
		t.Error("Expected error for ratio not above 1")
	}

	zero := 0.0
	req = validRequest()
	req.DoorGapThreshold = &zero
	if err := ValidateDetectRequest(req); err != nil {
		t.Errorf("Expected zero door gap threshold to pass, got %v", err)
	}
}
