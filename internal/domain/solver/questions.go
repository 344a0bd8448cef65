package solver

import "strings"

// Concept-check questions, keyed by problem keywords. The first matching
// entry wins, so hardness outranks pH which outranks stoichiometry.
type questionRule struct {
	keywords []string
	question string
}

const genericQuestion = "What are the key principles involved in solving this type of problem?"

var questionRules = []questionRule{
	{
		keywords: []string{"hardness"},
		question: "What is the difference between temporary and permanent hardness of water?",
	},
	{
		keywords: []string{"ph"},
		question: "What does pH measure, and what is the pH scale range?",
	},
	{
		keywords: []string{"mole", "stoichiometry"},
		question: "What is the relationship between moles, mass, and molecular weight?",
	},
}

// ConceptQuestion selects the fixed concept-check question for a problem.
func ConceptQuestion(problem string) string {
	lower := strings.ToLower(problem)
	for _, rule := range questionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.question
			}
		}
	}
	return genericQuestion
}

// ModelAnswers provides a reference answer per concept-check question, for
// judges that grade by rubric instead of chance.
func ModelAnswers() map[string]string {
	return map[string]string{
		"What is the difference between temporary and permanent hardness of water?": "Temporary hardness is caused by bicarbonates of calcium and magnesium and is removed by boiling. " +
			"Permanent hardness is caused by sulfates and chlorides and requires chemical treatment such as ion exchange.",
		"What does pH measure, and what is the pH scale range?": "pH measures the concentration of hydrogen ions in a solution. " +
			"The scale ranges from 0 to 14, where 7 is neutral.",
		"What is the relationship between moles, mass, and molecular weight?": "Moles equal mass divided by molecular weight. " +
			"One mole contains Avogadro's number of particles.",
		genericQuestion: "Identify the given quantities and required units. " +
			"Select the formula that connects them and check unit conversions before calculating.",
	}
}
