package workflow

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	KeyTaskID   = "task_id"
	KeyImageURI = "image_uri"
	KeyRealAge  = "real_age"
	KeyAnalysis = "analysis"
)

// IssueRegion identifies the facial region an issue was observed in. Values
// follow the ML Kit face-contour vocabulary that client apps use to place
// overlays. Unknown values returned by the model are preserved as-is; Valid
// reports whether a region belongs to the known vocabulary.
type IssueRegion string

// Known facial regions.
const (
	RegionNoseBase           IssueRegion = "NoseBase"
	RegionLeftEar            IssueRegion = "LeftEar"
	RegionRightEar           IssueRegion = "RightEar"
	RegionLeftEarTip         IssueRegion = "LeftEarTip"
	RegionRightEarTip        IssueRegion = "RightEarTip"
	RegionLeftEye            IssueRegion = "LeftEye"
	RegionRightEye           IssueRegion = "RightEye"
	RegionLeftCheek          IssueRegion = "LeftCheek"
	RegionRightCheek         IssueRegion = "RightCheek"
	RegionMouthBottom        IssueRegion = "MouthBottom"
	RegionMouthLeft          IssueRegion = "MouthLeft"
	RegionMouthRight         IssueRegion = "MouthRight"
	RegionFaceOval           IssueRegion = "FaceOval"
	RegionLeftEyebrowTop     IssueRegion = "LeftEyebrowTop"
	RegionLeftEyebrowBottom  IssueRegion = "LeftEyebrowBottom"
	RegionRightEyebrowTop    IssueRegion = "RightEyebrowTop"
	RegionRightEyebrowBottom IssueRegion = "RightEyebrowBottom"
)

var regions = []IssueRegion{
	RegionNoseBase,
	RegionLeftEar,
	RegionRightEar,
	RegionLeftEarTip,
	RegionRightEarTip,
	RegionLeftEye,
	RegionRightEye,
	RegionLeftCheek,
	RegionRightCheek,
	RegionMouthBottom,
	RegionMouthLeft,
	RegionMouthRight,
	RegionFaceOval,
	RegionLeftEyebrowTop,
	RegionLeftEyebrowBottom,
	RegionRightEyebrowTop,
	RegionRightEyebrowBottom,
}

// Regions returns the known facial region vocabulary.
func Regions() []IssueRegion {
	return regions
}

// Valid reports whether the region belongs to the known vocabulary.
func (r IssueRegion) Valid() bool {
	return slices.Contains(regions, r)
}

// IssueItem is a single localized skin finding. Intensity is normalized 0-1;
// Area is a coarse 1-10 estimate of affected surface within the region.
type IssueItem struct {
	Region      IssueRegion `json:"region"`
	Intensity   float64     `json:"intensity"`
	Area        int         `json:"area"`
	Description string      `json:"description"`
}

// IssuesCollection groups findings into the fixed set of fourteen issue
// categories. Wire names are stable; clients key overlays off them.
type IssuesCollection struct {
	OilyShine                 []IssueItem `json:"oily_shine"`
	DrynessDehydration        []IssueItem `json:"dryness_dehydration"`
	EnlargedPoresTexture      []IssueItem `json:"enlarged_pores_texture"`
	Blackheads                []IssueItem `json:"blackheads"`
	AcneActive                []IssueItem `json:"acne_active"`
	AcneScarsPostInflammatory []IssueItem `json:"acne_scars_post_inflammatory"`
	PigmentationBrownSpots    []IssueItem `json:"pigmentation_brown_spots"`
	Freckles                  []IssueItem `json:"freckles"`
	MelasmaLikePatches        []IssueItem `json:"melasma_like_patches"`
	RednessSensitivity        []IssueItem `json:"redness_sensitivity"`
	WrinklesAndFineLines      []IssueItem `json:"wrinkles_and_fine_lines"`
	EyeBags                   []IssueItem `json:"eye_bags"`
	DarkCircles               []IssueItem `json:"dark_circles"`
	MolesOrNevi               []IssueItem `json:"moles_or_nevi"`
}

// Count returns the total number of findings across all categories.
func (c *IssuesCollection) Count() int {
	n := 0
	for _, items := range c.categories() {
		n += len(*items)
	}
	return n
}

func (c *IssuesCollection) categories() []*[]IssueItem {
	return []*[]IssueItem{
		&c.OilyShine,
		&c.DrynessDehydration,
		&c.EnlargedPoresTexture,
		&c.Blackheads,
		&c.AcneActive,
		&c.AcneScarsPostInflammatory,
		&c.PigmentationBrownSpots,
		&c.Freckles,
		&c.MelasmaLikePatches,
		&c.RednessSensitivity,
		&c.WrinklesAndFineLines,
		&c.EyeBags,
		&c.DarkCircles,
		&c.MolesOrNevi,
	}
}

func (c *IssuesCollection) clone() IssuesCollection {
	out := *c
	for _, items := range out.categories() {
		if *items == nil {
			*items = []IssueItem{}
			continue
		}
		*items = slices.Clone(*items)
	}
	return out
}

// SkinType is the model's categorical skin type call with its confidence.
type SkinType struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// SkinTone describes observed tone lightness and undertone.
type SkinTone struct {
	Lightness string `json:"lightness"`
	Undertone string `json:"undertone"`
}

// SkinAge is the model's apparent-age estimate, optionally related to the
// reported real age ("younger", "matches", "older").
type SkinAge struct {
	EstimatedAge      int    `json:"estimated_age"`
	RelativeToRealAge string `json:"relative_to_real_age"`
}

// Scores holds per-concern ratings on a 0-100 scale where higher is better.
type Scores struct {
	Overall            int `json:"overall"`
	Wrinkles           int `json:"wrinkles"`
	DarkCircles        int `json:"dark_circles"`
	OilyShine          int `json:"oily_shine"`
	Pores              int `json:"pores"`
	Blackheads         int `json:"blackheads"`
	Acne               int `json:"acne"`
	SensitivityRedness int `json:"sensitivity_redness"`
	Pigmentation       int `json:"pigmentation"`
	Hydration          int `json:"hydration"`
	Roughness          int `json:"roughness"`
}

// GlobalProfile is the whole-face assessment produced by the first step.
type GlobalProfile struct {
	SkinType           SkinType `json:"skin_type"`
	SkinTone           SkinTone `json:"skin_tone"`
	SkinAge            SkinAge  `json:"skin_age"`
	Scores             Scores   `json:"scores"`
	SummaryDescription string   `json:"summary_description"`
}

// Analysis is the running accumulator built up across the five steps. The
// first step sets GlobalProfile; each later step appends findings to its own
// categories only, so merging is append-only and prior items are never
// removed or reordered.
type Analysis struct {
	GlobalProfile *GlobalProfile   `json:"global_profile"`
	Issues        IssuesCollection `json:"issues"`
}

// Snapshot returns a deep copy of the accumulator safe to hand off while
// later steps continue to mutate the original.
func (a *Analysis) Snapshot() Analysis {
	snap := Analysis{Issues: a.Issues.clone()}
	if a.GlobalProfile != nil {
		gp := *a.GlobalProfile
		snap.GlobalProfile = &gp
	}
	return snap
}

// Result is the final output of a completed analysis run.
type Result struct {
	TaskID      uuid.UUID `json:"task_id"`
	RealAge     *int      `json:"real_age,omitempty"`
	Analysis    Analysis  `json:"analysis"`
	CompletedAt time.Time `json:"completed_at"`
}
