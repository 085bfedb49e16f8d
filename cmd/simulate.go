package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"kitchen-guard/models"
	"kitchen-guard/utils"
)

var (
	simOut      string
	simFrames   int
	simScenario string
	simSeed     int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate synthetic detector and classifier documents",
	Long: `simulate writes paired detection/classification batch files the
way the upstream models would, for exercising check, replay, and watch
without cameras or models. Scenarios: safe, hazard, fire, mixed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate()
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simOut, "out", utils.GetEnv("KITCHEN_SIM_DIR", "mock_data"), "Output directory")
	simulateCmd.Flags().IntVar(&simFrames, "frames", 10, "Number of frames to generate")
	simulateCmd.Flags().StringVar(&simScenario, "scenario", "mixed", "Scene to stage per frame (safe, hazard, fire, mixed)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (0 uses the clock)")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate() error {
	switch simScenario {
	case "safe", "hazard", "fire", "mixed":
	default:
		return fmt.Errorf("unknown scenario %q (want safe, hazard, fire, or mixed)", simScenario)
	}

	seed := simSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	detDir := filepath.Join(simOut, "detections")
	clsDir := filepath.Join(simOut, "classifications")
	for _, dir := range []string{detDir, clsDir} {
		if err := utils.CreateFolder(dir); err != nil {
			return err
		}
	}

	fmt.Printf("Writing %d frame(s) to %s (scenario=%s seed=%d)\n\n", simFrames, simOut, simScenario, seed)

	for i := 0; i < simFrames; i++ {
		scenario := simScenario
		if scenario == "mixed" {
			switch roll := rng.Float64(); {
			case roll < 0.6:
				scenario = "safe"
			case roll < 0.9:
				scenario = "hazard"
			default:
				scenario = "fire"
			}
		}

		det, cls := stageFrame(rng, scenario, i)
		stem := fmt.Sprintf("frame_%04d", i)

		if err := writeJSONFile(filepath.Join(detDir, stem+".json"), det); err != nil {
			return err
		}
		if err := writeJSONFile(filepath.Join(clsDir, stem+".json"), cls); err != nil {
			return err
		}

		fmt.Printf("  wrote %s (%s)\n", stem, scenario)
	}

	return nil
}

func writeJSONFile(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sceneBuilder accumulates one staged frame's detections and the
// classifier verdicts for their crops, numbering crop files per class
// the way the detector does.
type sceneBuilder struct {
	rng      *rand.Rand
	counters map[models.ObjectClass]int

	detections      []models.Detection
	classifications map[string]models.Classification
}

func newSceneBuilder(rng *rand.Rand) *sceneBuilder {
	return &sceneBuilder{
		rng:             rng,
		counters:        make(map[models.ObjectClass]int),
		classifications: make(map[string]models.Classification),
	}
}

func (b *sceneBuilder) confidence() float64 {
	return 0.75 + b.rng.Float64()*0.2
}

func (b *sceneBuilder) jitter(base, spread int) int {
	return base + b.rng.Intn(2*spread+1) - spread
}

// add places one detection with a box centered near (cx, cy) and
// records its classifier verdict under the crop basename.
func (b *sceneBuilder) add(class models.ObjectClass, cx, cy, halfW, halfH int, verdict models.Classification) {
	cx = b.jitter(cx, 8)
	cy = b.jitter(cy, 8)

	crop := fmt.Sprintf("%s_%03d.jpg", class, b.counters[class])
	b.counters[class]++

	b.detections = append(b.detections, models.Detection{
		Class:      class,
		Confidence: b.confidence(),
		BBox:       []int{cx - halfW, cy - halfH, cx + halfW, cy + halfH},
		Center:     []int{cx, cy},
		CropPath:   "crops/" + crop,
	})

	verdict.Confidence = b.confidence()
	b.classifications[crop] = verdict
}

func stoveVerdict(on bool) models.Classification {
	status := models.StatusOff
	indicator := "none"
	if on {
		status = models.StatusOn
		indicator = "red"
	}
	return models.Classification{
		Status:   status,
		Features: map[string]any{"has_flame": on, "temperature_indicator": indicator},
	}
}

func knifeVerdict(unattended bool) models.Classification {
	status := models.StatusInUse
	if unattended {
		status = models.StatusUnattended
	}
	return models.Classification{
		Status:   status,
		Features: map[string]any{"near_person": !unattended, "on_cutting_board": false},
	}
}

func panVerdict(empty bool) models.Classification {
	status := models.StatusInUse
	if empty {
		status = models.StatusEmpty
	}
	return models.Classification{
		Status:   status,
		Features: map[string]any{"has_contents": !empty, "on_heat": true},
	}
}

func detectedVerdict() models.Classification {
	return models.Classification{Status: models.StatusDetected, Features: map[string]any{}}
}

// stageFrame lays out one 1280x720 kitchen scene. The stove sits mid
// frame; hazard scenes empty the kitchen (or push the person out of
// range), fire scenes add a fire detection on top of an active stove.
func stageFrame(rng *rand.Rand, scenario string, frame int) (models.DetectionBatch, models.ClassificationBatch) {
	b := newSceneBuilder(rng)
	now := time.Now().Format(time.RFC3339)

	switch scenario {
	case "safe":
		b.add(models.ClassStove, 640, 400, 80, 80, stoveVerdict(true))
		b.add(models.ClassPerson, 700, 430, 60, 140, detectedVerdict())
		b.add(models.ClassPan, 640, 390, 50, 30, panVerdict(false))
		b.add(models.ClassKnife, 690, 450, 30, 15, knifeVerdict(false))

	case "hazard":
		b.add(models.ClassStove, 640, 400, 80, 80, stoveVerdict(true))
		b.add(models.ClassPan, 640, 390, 50, 30, panVerdict(true))
		b.add(models.ClassKnife, 300, 520, 30, 15, knifeVerdict(true))
		if rng.Intn(2) == 0 {
			// Person in frame but far from both stove and knife.
			b.add(models.ClassPerson, 80, 100, 60, 140, detectedVerdict())
		}

	case "fire":
		b.add(models.ClassFire, 620, 300, 50, 60, detectedVerdict())
		b.add(models.ClassStove, 640, 400, 80, 80, stoveVerdict(true))
	}

	det := models.DetectionBatch{
		Timestamp:   now,
		FrameNumber: models.FrameNumber(frame),
		Detections:  b.detections,
	}
	cls := models.ClassificationBatch{
		Timestamp:       now,
		Classifications: b.classifications,
	}
	return det, cls
}
