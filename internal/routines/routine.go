// Package routines generates AM/Midday/PM skincare plans from a completed
// skin analysis and an intake questionnaire, grounded in a fixed product
// catalog. Plans are produced by the model and post-processed to attach
// purchase links via fuzzy name matching.
package routines

// Intake is the client questionnaire that constrains plan generation.
// Every field is optional; Normalize fills missing values with the
// conservative defaults the planner rules expect.
type Intake struct {
	Sensitivity      string   `json:"sensitivity"`
	Pregnancy        string   `json:"pregnancy"`
	RxTopical        string   `json:"rx_topical"`
	Allergies        []string `json:"allergies"`
	Fitzpatrick      string   `json:"fitzpatrick"`
	CurrentActives   []string `json:"current_actives"`
	Country          *string  `json:"country,omitempty"`
	BudgetPreference string   `json:"budget_preference"`
}

// Normalize fills zero-value fields with defaults so the composed prompt
// never presents the planner with absent safety signals.
func (i *Intake) Normalize() {
	if i.Sensitivity == "" {
		i.Sensitivity = "unsure"
	}
	if i.Pregnancy == "" {
		i.Pregnancy = "prefer_not_to_say"
	}
	if i.RxTopical == "" {
		i.RxTopical = "unsure"
	}
	if i.Fitzpatrick == "" {
		i.Fitzpatrick = "unsure"
	}
	if i.BudgetPreference == "" {
		i.BudgetPreference = "no_pref"
	}
	if i.Allergies == nil {
		i.Allergies = []string{}
	}
	if i.CurrentActives == nil {
		i.CurrentActives = []string{}
	}
}

// Instruction describes how a routine step should be performed.
type Instruction struct {
	How       string `json:"how"`
	Frequency string `json:"frequency"`
	Timing    string `json:"timing"`
}

// Product is a catalog item selected for a routine step. URL is attached
// after generation; the model never produces it.
type Product struct {
	ID    *string `json:"id"`
	Brand string  `json:"brand"`
	Name  string  `json:"name"`
	Tier  string  `json:"tier"`
	Why   string  `json:"why"`
	URL   string  `json:"url,omitempty"`
}

// Step is a single routine step: cleanser, active, moisturizer, sunscreen,
// refresh, or other.
type Step struct {
	Type         string      `json:"type"`
	Instructions Instruction `json:"instructions"`
	Products     []Product   `json:"products"`
}

// Sections groups routine steps by time of day. Midday is omitted when the
// planner deems it irrelevant.
type Sections struct {
	AM     []Step `json:"am"`
	Midday []Step `json:"midday,omitempty"`
	PM     []Step `json:"pm"`
}

// Concern is a prioritized skin concern the plan addresses.
type Concern struct {
	Key      string `json:"key"`
	Severity string `json:"severity"`
	Why      string `json:"why"`
}

// Reasons explains the plan's prioritization.
type Reasons struct {
	PrioritizedConcerns []Concern `json:"prioritized_concerns"`
	Notes               string    `json:"notes"`
}

// Diet holds dietary guidance accompanying the routine.
type Diet struct {
	Increase    []string `json:"increase"`
	Limit       []string `json:"limit"`
	Supplements []string `json:"supplements"`
}

// Lifestyle holds non-product guidance accompanying the routine.
type Lifestyle struct {
	Sleep          string `json:"sleep"`
	Stress         string `json:"stress"`
	Sun            string `json:"sun"`
	Habits         string `json:"habits"`
	RoutineHygiene string `json:"routine_hygiene"`
	Diet           Diet   `json:"diet"`
}

// Plan is the complete generated skincare plan.
type Plan struct {
	Routine   Sections  `json:"routine"`
	Reasons   Reasons   `json:"reasons"`
	Warnings  []string  `json:"warnings"`
	Lifestyle Lifestyle `json:"lifestyle"`
}

// ResolveProductURLs attaches a purchase link to every product in the plan,
// matching the model-produced name against the catalog link table. Products
// with no sufficiently close match keep an empty URL.
func (p *Plan) ResolveProductURLs() {
	for _, section := range [][]Step{p.Routine.AM, p.Routine.Midday, p.Routine.PM} {
		for i := range section {
			for j := range section[i].Products {
				section[i].Products[j].URL = FindProductURL(section[i].Products[j].Name)
			}
		}
	}
}
