package prompts

const issueItemSpec = `IssueItem = {"region": "<ML Kit region identifier>", "intensity": 0-1, "area": 1-10, "description": "<string>"}

Field constraints:
- region: One of the valid ML Kit region identifiers. Choose the region that
  best localizes the finding; use FaceOval for diffuse, whole-face findings.
- intensity: Normalized severity of the finding, 0 (barely visible) to 1
  (severe).
- area: Coarse estimate of how much of the region is affected, 1 (a point)
  to 10 (the entire region).
- description: Short English description of what is visible.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Cluster nearby problems into a single item and keep 1-5 items per category
- Return an empty array for any category with no findings
- If accumulated findings from previous steps are provided, use them as
  context only — never repeat an already-reported finding`

const globalProfileSpec = `Respond with a JSON object matching this exact structure:

{
  "global_profile": {
    "skin_type": {"label": "dry | oily | combination | normal | unknown", "confidence": 0-1},
    "skin_tone": {"lightness": "very_light | light | medium | tan | brown | dark", "undertone": "yellow | neutral | red | olive | unknown"},
    "skin_age": {"estimated_age": <integer>, "relative_to_real_age": "younger | similar | older | unknown"},
    "scores": {
      "overall": 0-100,
      "wrinkles": 0-100,
      "dark_circles": 0-100,
      "oily_shine": 0-100,
      "pores": 0-100,
      "blackheads": 0-100,
      "acne": 0-100,
      "sensitivity_redness": 0-100,
      "pigmentation": 0-100,
      "hydration": 0-100,
      "roughness": 0-100
    },
    "summary_description": "<short English sentence>"
  }
}

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Higher scores mean the concern is less present (100 = flawless)
- relative_to_real_age is "unknown" when no real age was reported`

const textureSpec = `Respond with a JSON object matching this exact structure:

{
  "issues": {
    "oily_shine": IssueItem[],
    "dryness_dehydration": IssueItem[],
    "enlarged_pores_texture": IssueItem[],
    "blackheads": IssueItem[]
  }
}

` + issueItemSpec

const pigmentationSpec = `Respond with a JSON object matching this exact structure:

{
  "issues": {
    "pigmentation_brown_spots": IssueItem[],
    "freckles": IssueItem[],
    "melasma_like_patches": IssueItem[],
    "moles_or_nevi": IssueItem[]
  }
}

` + issueItemSpec

const acneSpec = `Respond with a JSON object matching this exact structure:

{
  "issues": {
    "acne_active": IssueItem[],
    "acne_scars_post_inflammatory": IssueItem[],
    "redness_sensitivity": IssueItem[]
  }
}

` + issueItemSpec

const agingSpec = `Respond with a JSON object matching this exact structure:

{
  "issues": {
    "wrinkles_and_fine_lines": IssueItem[],
    "dark_circles": IssueItem[],
    "eye_bags": IssueItem[]
  }
}

` + issueItemSpec

const routineSpec = `Respond with a JSON object matching this exact structure:

{
  "routine": {
    "am": RoutineStep[],
    "midday": RoutineStep[],
    "pm": RoutineStep[]
  },
  "reasons": {
    "prioritized_concerns": [{"key": "pigmentation | acne | oily_shine | dryness | redness | wrinkles", "severity": "mild | moderate | severe", "why": "<string>"}],
    "notes": "<string>"
  },
  "warnings": ["<string>"],
  "lifestyle": {
    "sleep": "<string>",
    "stress": "<string>",
    "sun": "<string>",
    "habits": "<string>",
    "routine_hygiene": "<string>",
    "diet": {"increase": ["<string>"], "limit": ["<string>"], "supplements": ["<string>"]}
  }
}

RoutineStep = {
  "type": "cleanser | active | moisturizer | sunscreen | refresh | other",
  "instructions": {"how": "<string>", "frequency": "<string>", "timing": "<string>"},
  "products": [{"id": "<string or null>", "brand": "<string>", "name": "<string>", "tier": "budget | mid | premium", "why": "<string>"}]
}

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Omit the midday key entirely when no midday step is relevant
- Product names must come verbatim from the provided product database`

var specs = map[Stage]string{
	StageGlobalProfile: globalProfileSpec,
	StageTexture:       textureSpec,
	StagePigmentation:  pigmentationSpec,
	StageAcne:          acneSpec,
	StageAging:         agingSpec,
	StageRoutine:       routineSpec,
}

// Spec returns the hardcoded specification for a pipeline stage.
// Specifications define the expected output format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
