package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/lumiderm/lumiderm/internal/prompts"
	"github.com/lumiderm/lumiderm/pkg/formatting"
)

type profileResponse struct {
	GlobalProfile GlobalProfile `json:"global_profile"`
}

type textureResponse struct {
	Issues struct {
		OilyShine            []IssueItem `json:"oily_shine"`
		DrynessDehydration   []IssueItem `json:"dryness_dehydration"`
		EnlargedPoresTexture []IssueItem `json:"enlarged_pores_texture"`
		Blackheads           []IssueItem `json:"blackheads"`
	} `json:"issues"`
}

type pigmentationResponse struct {
	Issues struct {
		PigmentationBrownSpots []IssueItem `json:"pigmentation_brown_spots"`
		Freckles               []IssueItem `json:"freckles"`
		MelasmaLikePatches     []IssueItem `json:"melasma_like_patches"`
		MolesOrNevi            []IssueItem `json:"moles_or_nevi"`
	} `json:"issues"`
}

type acneResponse struct {
	Issues struct {
		AcneActive                []IssueItem `json:"acne_active"`
		AcneScarsPostInflammatory []IssueItem `json:"acne_scars_post_inflammatory"`
		RednessSensitivity        []IssueItem `json:"redness_sensitivity"`
	} `json:"issues"`
}

type agingResponse struct {
	Issues struct {
		WrinklesAndFineLines []IssueItem `json:"wrinkles_and_fine_lines"`
		DarkCircles          []IssueItem `json:"dark_circles"`
		EyeBags              []IssueItem `json:"eye_bags"`
	} `json:"issues"`
}

// ProfileNode returns the state node for the first step: the whole-face
// profile (skin type, tone, apparent age, scores, summary).
func ProfileNode(rt *Runtime) state.StateNode {
	return stepNode(rt, prompts.StageGlobalProfile, TagProfileComplete,
		func(a *Analysis, resp profileResponse) {
			gp := resp.GlobalProfile
			a.GlobalProfile = &gp
		})
}

// TextureNode returns the state node for the second step: oily shine,
// dryness, pore/texture findings, and blackheads.
func TextureNode(rt *Runtime) state.StateNode {
	return stepNode(rt, prompts.StageTexture, TagTextureComplete,
		func(a *Analysis, resp textureResponse) {
			c := &a.Issues
			c.OilyShine = append(c.OilyShine, resp.Issues.OilyShine...)
			c.DrynessDehydration = append(c.DrynessDehydration, resp.Issues.DrynessDehydration...)
			c.EnlargedPoresTexture = append(c.EnlargedPoresTexture, resp.Issues.EnlargedPoresTexture...)
			c.Blackheads = append(c.Blackheads, resp.Issues.Blackheads...)
		})
}

// PigmentationNode returns the state node for the third step: brown spots,
// freckles, melasma-like patches, and moles.
func PigmentationNode(rt *Runtime) state.StateNode {
	return stepNode(rt, prompts.StagePigmentation, TagPigmentationComplete,
		func(a *Analysis, resp pigmentationResponse) {
			c := &a.Issues
			c.PigmentationBrownSpots = append(c.PigmentationBrownSpots, resp.Issues.PigmentationBrownSpots...)
			c.Freckles = append(c.Freckles, resp.Issues.Freckles...)
			c.MelasmaLikePatches = append(c.MelasmaLikePatches, resp.Issues.MelasmaLikePatches...)
			c.MolesOrNevi = append(c.MolesOrNevi, resp.Issues.MolesOrNevi...)
		})
}

// AcneNode returns the state node for the fourth step: active acne,
// post-inflammatory scarring, and redness/sensitivity.
func AcneNode(rt *Runtime) state.StateNode {
	return stepNode(rt, prompts.StageAcne, TagAcneComplete,
		func(a *Analysis, resp acneResponse) {
			c := &a.Issues
			c.AcneActive = append(c.AcneActive, resp.Issues.AcneActive...)
			c.AcneScarsPostInflammatory = append(c.AcneScarsPostInflammatory, resp.Issues.AcneScarsPostInflammatory...)
			c.RednessSensitivity = append(c.RednessSensitivity, resp.Issues.RednessSensitivity...)
		})
}

// AgingNode returns the state node for the fifth step: wrinkles, dark
// circles, and under-eye puffiness.
func AgingNode(rt *Runtime) state.StateNode {
	return stepNode(rt, prompts.StageAging, TagAgingComplete,
		func(a *Analysis, resp agingResponse) {
			c := &a.Issues
			c.WrinklesAndFineLines = append(c.WrinklesAndFineLines, resp.Issues.WrinklesAndFineLines...)
			c.DarkCircles = append(c.DarkCircles, resp.Issues.DarkCircles...)
			c.EyeBags = append(c.EyeBags, resp.Issues.EyeBags...)
		})
}

// stepNode builds a state node that performs one vision inference against the
// selfie, parses the stage's typed response, merges it into the accumulator,
// and emits a progress snapshot. Any inference or parse error aborts the run.
func stepNode[T any](
	rt *Runtime,
	stage prompts.Stage,
	tag string,
	merge func(*Analysis, T),
) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		an, err := extractAnalysis(s)
		if err != nil {
			return s, fmt.Errorf("%s: %w", stage, err)
		}

		imageURI, err := stateString(s, KeyImageURI)
		if err != nil {
			return s, fmt.Errorf("%s: %w", stage, err)
		}

		parsed, err := infer[T](ctx, rt, stage, imageURI, stateRealAge(s), an)
		if err != nil {
			return s, fmt.Errorf("%s: %w: %w", stage, ErrStepFailed, err)
		}

		merge(an, parsed)

		rt.Logger.InfoContext(
			ctx, "analysis step complete",
			"stage", stage,
			"findings", an.Issues.Count(),
		)

		s = s.Set(KeyAnalysis, *an)
		rt.notify(ctx, tag, an)
		return s, nil
	})
}

func infer[T any](
	ctx context.Context,
	rt *Runtime,
	stage prompts.Stage,
	imageURI string,
	realAge *int,
	an *Analysis,
) (T, error) {
	var zero T

	// the first step receives no accumulated context
	var prior *Analysis
	if an.GlobalProfile != nil || an.Issues.Count() > 0 {
		prior = an
	}

	prompt, err := ComposePrompt(ctx, rt.Prompts, stage, realAge, prior)
	if err != nil {
		return zero, err
	}

	content, err := rt.Invoker.Vision(ctx, prompt, imageURI)
	if err != nil {
		return zero, fmt.Errorf("vision call: %w", err)
	}

	parsed, err := formatting.Parse[T](content)
	if err != nil {
		return zero, fmt.Errorf("parse response: %w", err)
	}

	return parsed, nil
}

func extractAnalysis(s state.State) (*Analysis, error) {
	val, ok := s.Get(KeyAnalysis)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingState, KeyAnalysis)
	}

	an, ok := val.(Analysis)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not Analysis", ErrMissingState, KeyAnalysis)
	}

	return &an, nil
}

func stateString(s state.State, key string) (string, error) {
	val, ok := s.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingState, key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not string", ErrMissingState, key)
	}

	return str, nil
}

func stateRealAge(s state.State) *int {
	val, ok := s.Get(KeyRealAge)
	if !ok {
		return nil
	}

	age, ok := val.(int)
	if !ok {
		return nil
	}

	return &age
}
