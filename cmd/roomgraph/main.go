package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dd0wney/roomgraph/pkg/geometry"
	"github.com/dd0wney/roomgraph/pkg/rooms"
	"github.com/dd0wney/roomgraph/pkg/validation"
)

// wallsFile is the on-disk input format: a wall list plus optional
// detection overrides.
type wallsFile struct {
	Walls              []geometry.Wall `json:"walls"`
	AreaThreshold      *float64        `json:"area_threshold"`
	DoorGapThreshold   *float64        `json:"door_gap_threshold"`
	OuterBoundaryRatio *float64        `json:"outer_boundary_ratio"`
}

func main() {
	in := flag.String("in", "", "Input walls JSON file (required)")
	out := flag.String("out", "", "Output rooms JSON file (default stdout)")
	areaThreshold := flag.Float64("area", rooms.DefaultAreaThreshold, "Minimum room area")
	doorGap := flag.Float64("door-gap", 0, "Door gap bridging distance (0 = disabled)")
	outerRatio := flag.Float64("outer-ratio", rooms.DefaultOuterBoundaryRatio, "Outer boundary area ratio")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	var input wallsFile
	if err := json.Unmarshal(data, &input); err != nil {
		log.Fatalf("Failed to parse input: %v", err)
	}

	req := validation.DetectRequest{
		Walls:              input.Walls,
		AreaThreshold:      input.AreaThreshold,
		DoorGapThreshold:   input.DoorGapThreshold,
		OuterBoundaryRatio: input.OuterBoundaryRatio,
	}
	if err := validation.ValidateDetectRequest(&req); err != nil {
		log.Fatalf("Invalid input: %v", err)
	}

	opts := rooms.Options{
		AreaThreshold:      *areaThreshold,
		DoorGapThreshold:   *doorGap,
		OuterBoundaryRatio: *outerRatio,
		Limits:             rooms.DefaultOptions().Limits,
	}
	if input.AreaThreshold != nil {
		opts.AreaThreshold = *input.AreaThreshold
	}
	if input.DoorGapThreshold != nil {
		opts.DoorGapThreshold = *input.DoorGapThreshold
	}
	if input.OuterBoundaryRatio != nil {
		opts.OuterBoundaryRatio = *input.OuterBoundaryRatio
	}

	result := rooms.Detect(input.Walls, opts)
	if result.Truncated {
		log.Printf("⚠️  cycle enumeration capped; room list may be incomplete")
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}

	if *out == "" {
		fmt.Println(string(encoded))
		return
	}
	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Detected %d rooms from %d walls, saved to %s", len(result.Rooms), len(input.Walls), *out)
}
