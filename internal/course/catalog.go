// Package course holds the static catalog for the "Water and Its Treatment"
// chapter. It is display data only; no engine logic depends on it.
package course

// Video is one lecture entry under a topic.
type Video struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Quiz is a practice quiz attached to a topic.
type Quiz struct {
	Title     string `json:"title"`
	Questions int    `json:"questions"`
}

// Topic is one node of the course structure.
type Topic struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Type       string   `json:"type"` // prerequisite, core, advanced
	Difficulty string   `json:"difficulty"`
	Videos     []Video  `json:"videos,omitempty"`
	Notes      []string `json:"notes,omitempty"`
	Quizzes    []Quiz   `json:"quizzes,omitempty"`
	Examples   []string `json:"examples,omitempty"`
}

var catalog = []Topic{
	{
		ID: "prereq-1", Title: "Units and Dimensions", Type: "prerequisite", Difficulty: "easy",
		Videos:   []Video{{Title: "Introduction to Units", Duration: "10 min"}},
		Notes:    []string{"SI units", "Unit conversions", "Dimensional analysis"},
		Examples: []string{"Convert 1 L to mL", "Express density in g/cm³"},
	},
	{
		ID: "prereq-2", Title: "Concentration Terms", Type: "prerequisite", Difficulty: "easy",
		Videos:   []Video{{Title: "Molarity, Normality, ppm", Duration: "15 min"}},
		Notes:    []string{"Molarity (M)", "Normality (N)", "Parts per million (ppm)", "Percentage"},
		Examples: []string{"Calculate molarity of 0.5 mol in 2L", "Convert 100 ppm to mg/L"},
	},
	{
		ID: "prereq-3", Title: "Chemical Reactions", Type: "prerequisite", Difficulty: "medium",
		Videos:   []Video{{Title: "Balancing Equations", Duration: "12 min"}},
		Notes:    []string{"Stoichiometry", "Balancing equations", "Reaction types"},
		Examples: []string{"Balance CaCO₃ + HCl → CaCl₂ + H₂O + CO₂"},
	},
	{
		ID: "core-1", Title: "Introduction to Water Chemistry", Type: "core", Difficulty: "easy",
		Videos: []Video{
			{Title: "Water as Universal Solvent", Duration: "8 min"},
			{Title: "Water Cycle and Sources", Duration: "10 min"},
		},
		Notes: []string{
			"Water structure (H₂O)",
			"Hydrogen bonding",
			"Water sources and impurities",
			"Types of water (distilled, deionized, tap)",
		},
		Examples: []string{"Identify hydrogen bonds in water", "Compare different water sources"},
	},
	{
		ID: "core-2", Title: "Hardness of Water", Type: "core", Difficulty: "medium",
		Videos: []Video{
			{Title: "What is Water Hardness?", Duration: "12 min"},
			{Title: "Temporary vs Permanent Hardness", Duration: "15 min"},
			{Title: "Hardness Measurement", Duration: "18 min"},
		},
		Notes: []string{
			"Definition of hardness",
			"Causes: Ca²⁺, Mg²⁺ ions",
			"Temporary hardness (bicarbonates)",
			"Permanent hardness (sulfates, chlorides)",
			"Units: ppm, °H, mg/L as CaCO₃",
			"EDTA titration method",
		},
		Quizzes: []Quiz{{Title: "Hardness Concepts Quiz", Questions: 10}},
		Examples: []string{
			"Calculate hardness from Ca²⁺ concentration",
			"Convert 50 ppm to °H",
			"EDTA titration calculation",
		},
	},
	{
		ID: "core-3", Title: "Alkalinity of Water", Type: "core", Difficulty: "medium",
		Videos: []Video{{Title: "Understanding Alkalinity", Duration: "14 min"}},
		Notes: []string{
			"Definition of alkalinity",
			"Carbonate, bicarbonate, hydroxide",
			"Phenolphthalein and methyl orange indicators",
			"Alkalinity measurement",
		},
		Examples: []string{"Calculate total alkalinity", "Distinguish carbonate vs bicarbonate"},
	},
	{
		ID: "core-4", Title: "pH and Acidity", Type: "core", Difficulty: "medium",
		Videos: []Video{
			{Title: "pH Scale Explained", Duration: "10 min"},
			{Title: "pH Measurement Methods", Duration: "12 min"},
		},
		Notes: []string{
			"pH = -log[H⁺]",
			"pH scale (0-14)",
			"Acidic, neutral, basic",
			"pH indicators",
			"pH meter usage",
		},
		Examples: []string{"Calculate pH from [H⁺]", "Determine [OH⁻] from pH"},
	},
	{
		ID: "core-5", Title: "Water Softening Methods", Type: "core", Difficulty: "hard",
		Videos: []Video{
			{Title: "Lime-Soda Process", Duration: "15 min"},
			{Title: "Ion Exchange Method", Duration: "12 min"},
			{Title: "Reverse Osmosis", Duration: "10 min"},
		},
		Notes: []string{
			"Lime-Soda process (Clark's method)",
			"Ion exchange resins",
			"Reverse osmosis",
			"Distillation",
			"Advantages and disadvantages",
		},
		Quizzes: []Quiz{{Title: "Softening Methods Quiz", Questions: 8}},
		Examples: []string{
			"Calculate lime requirement",
			"Ion exchange capacity",
			"RO efficiency calculation",
		},
	},
	{
		ID: "core-6", Title: "Municipal Water Treatment", Type: "core", Difficulty: "hard",
		Videos: []Video{
			{Title: "Water Treatment Plant Overview", Duration: "20 min"},
			{Title: "Coagulation and Flocculation", Duration: "15 min"},
			{Title: "Filtration and Disinfection", Duration: "18 min"},
		},
		Notes: []string{
			"Treatment stages",
			"Coagulation (alum, ferric chloride)",
			"Sedimentation",
			"Filtration (sand, activated carbon)",
			"Disinfection (chlorination, UV)",
			"Fluoridation",
		},
		Examples: []string{"Design treatment sequence", "Calculate chlorine dose"},
	},
	{
		ID: "advanced-1", Title: "Industrial Water Treatment", Type: "advanced", Difficulty: "hard",
		Videos: []Video{{Title: "Industrial Applications", Duration: "25 min"}},
		Notes: []string{
			"Boiler water treatment",
			"Cooling water treatment",
			"Wastewater treatment",
			"Industrial case studies",
		},
		Examples: []string{"Boiler scale prevention", "Cooling tower water quality"},
	},
	{
		ID: "advanced-2", Title: "Exam-Oriented Problems", Type: "advanced", Difficulty: "hard",
		Quizzes: []Quiz{
			{Title: "Hardness Problems", Questions: 15},
			{Title: "pH and Alkalinity", Questions: 12},
			{Title: "Treatment Methods", Questions: 10},
		},
		Examples: []string{
			"Previous year exam questions",
			"Step-by-step solutions",
			"Common mistakes to avoid",
		},
	},
}

// Catalog returns the full course structure.
func Catalog() []Topic {
	out := make([]Topic, len(catalog))
	copy(out, catalog)
	return out
}
