// simulation/simulation.go
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hydrolearn/backend/internal/domain/note"
	"github.com/hydrolearn/backend/internal/domain/solver"
	"github.com/hydrolearn/backend/internal/judge"
	"github.com/hydrolearn/backend/internal/service"
	"github.com/hydrolearn/backend/internal/store"
	"github.com/hydrolearn/backend/internal/worker"
)

type evalJob struct {
	Title      string
	Evaluation note.Evaluation
}

var sampleProblems = []struct {
	problem string
	answer  string
	hints   int
}{
	{
		problem: "Calculate the hardness of a water sample containing 120 mg/L of Ca ions.",
		answer:  "Temporary hardness comes from bicarbonates and boils away; permanent hardness needs ion exchange.",
		hints:   1,
	},
	{
		problem: "What is the pH of a solution with hydrogen ion concentration 1e-4 M?",
		answer:  "pH measures hydrogen ion concentration on a 0 to 14 scale, so the answer is 4.",
		hints:   0,
	},
	{
		problem: "How many moles are in 36 g of water?",
		answer:  "Moles equal mass over molecular weight, so 36/18 = 2 moles.",
		hints:   2,
	},
}

var sampleNotes = []struct {
	title   string
	content string
}{
	{
		title: "Water Hardness Basics",
		content: "Water hardness is caused by calcium and magnesium ions. " +
			"It is measured by EDTA titration using an indicator, for example Eriochrome Black T, " +
			"and calculated with the hardness formula at pH 10.",
	},
	{
		title:   "pH Notes",
		content: "pH measures acidity. The scale goes from 0 to 14.",
	},
	{
		title: "Alkalinity Summary",
		content: "# Alkalinity\n\nAlkalinity measures the water's capacity to neutralize acid. " +
			"1. Carbonate alkalinity\n2. Bicarbonate alkalinity\n\nTitration with methyl orange finds the endpoint.",
	},
}

// Run drives a scripted learner through the whole engine without a server:
// guided problem sessions through the rubric judge, then a batch of note
// evaluations fanned across the worker pool.
func Run(logger *slog.Logger) error {
	dir, err := os.MkdirTemp("", "hydrolearn-sim")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	st := store.NewJSONStore(filepath.Join(dir, "state.json"))
	learner := service.NewLearnerState(st, logger)

	// The rubric judge makes the demo deterministic; the server default is
	// the probability-based judge.
	rubric := judge.NewRubricJudge(solver.ModelAnswers(), 0.7)
	solverSvc := service.NewSolverService(learner, rubric, logger, 0)

	ctx := context.Background()

	for _, p := range sampleProblems {
		detection, err := solverSvc.DetectConcepts(ctx, p.problem)
		if err != nil {
			return err
		}
		fmt.Printf("\n=== Problem: %s\n", p.problem)
		fmt.Printf("Concepts: %v\n", detection.Concepts)
		fmt.Printf("Question: %s\n", solverSvc.ConceptQuestion(p.problem))

		for i := 0; i < p.hints; i++ {
			fmt.Printf("Hint %d: %s\n", i+1, solverSvc.Hint(p.problem, i))
		}

		result, err := solverSvc.CheckAnswer(ctx, p.problem, p.answer, p.hints)
		if err != nil {
			return err
		}
		fmt.Printf("Correct: %v — %s\n", result.Correct, result.Feedback)
	}

	pool := worker.NewPool[evalJob](3, len(sampleNotes))
	for _, n := range sampleNotes {
		title, content := n.title, n.content
		pool.Submit(title, func() evalJob {
			return evalJob{Title: title, Evaluation: note.Evaluate(title, content)}
		})
	}

	for range sampleNotes {
		result := <-pool.Results()
		eval := result.Output.Evaluation
		fmt.Printf("\n=== Note: %s\n", result.Output.Title)
		fmt.Printf("Scores: accuracy %d, clarity %d, completeness %d, overall %d\n",
			eval.Accuracy, eval.Clarity, eval.Completeness, eval.OverallScore)
		fmt.Printf("Feedback: %s\n", eval.Feedback)
		if len(eval.MissingPoints) > 0 {
			fmt.Printf("Missing: %v\n", eval.MissingPoints)
		}
	}
	pool.Shutdown()

	fmt.Println("\n=== Weakest concepts after the run")
	for _, wc := range learner.WeakestConcepts() {
		fmt.Printf("%-20s strength %.1f (%d attempts, %d wrong)\n", wc.Concept, wc.Strength, wc.Attempts, wc.WrongAttempts)
	}

	return nil
}
