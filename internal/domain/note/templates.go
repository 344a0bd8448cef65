package note

// Feedback tiers. Exactly one is chosen from the overall score; there is no
// blending between tiers.
const (
	feedbackNeedsDetail = "Your notes need more detail. Consider adding formulas, examples, and clearer explanations."
	feedbackGood        = "Good work! Your notes cover the main points. Consider adding more examples and connecting concepts."
	feedbackExcellent   = "Excellent notes! Well-structured with good coverage of key concepts and examples."
)

// improvedHardnessTemplate is the fully structured rewrite substituted
// wholesale when a note mentions hardness. Only the note's title is
// interpolated; the student's prose is not rewritten.
const improvedHardnessTemplate = `# %s

## Definition
Water hardness is caused by the presence of dissolved calcium (Ca²⁺) and magnesium (Mg²⁺) ions in water.

## Types
1. **Temporary Hardness**: Caused by bicarbonates. Removed by boiling.
2. **Permanent Hardness**: Caused by sulfates and chlorides. Requires chemical treatment.

## Measurement Methods
- EDTA Titration (most common)
- Soap Test
- Atomic Absorption Spectroscopy

## Treatment Methods
- Ion Exchange
- Lime-Soda Process
- Reverse Osmosis`

// conceptConnections is the static lookup behind the concept map. Concepts
// not listed here get an empty connection list.
var conceptConnections = map[string][]string{
	"Water Hardness": {"Calcium", "Magnesium", "EDTA"},
	"EDTA":           {"Complexation", "Titration", "Indicator"},
	"pH":             {"Acidity", "Alkalinity", "Buffer"},
}

// formulaBlock appends its lines to the formula summary when the trigger
// keyword appears in the note. Blocks are independent and evaluated in order.
type formulaBlock struct {
	trigger string
	lines   []string
}

var formulaBlocks = []formulaBlock{
	{
		trigger: "hardness",
		lines: []string{
			"Hardness (ppm) = (Volume of EDTA × Molarity × 1000) / Volume of Sample",
			"1° Hardness = 1 mg CaCO₃ per liter",
		},
	},
	{
		trigger: "ph",
		lines: []string{
			"pH = -log[H⁺]",
			"pOH = -log[OH⁻]",
			"pH + pOH = 14",
		},
	},
}

// gapRule surfaces a missing point when the note mentions one keyword but
// not another. Each rule is evaluated independently; zero or more may fire.
type gapRule struct {
	mentions string
	lacks    string
	point    string
}

var gapRules = []gapRule{
	{mentions: "hardness", lacks: "edta", point: "EDTA titration procedure details"},
	{mentions: "edta", lacks: "indicator", point: "Eriochrome Black T indicator mechanism"},
	{mentions: "hardness", lacks: "formula", point: "Calculation formula for hardness"},
	{mentions: "edta", lacks: "ph", point: "pH buffer importance (pH 10)"},
}
