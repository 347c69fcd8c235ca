package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/kalulu/darasa/core"
	"github.com/kalulu/darasa/core/grading"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	scale  *grading.Scale
	bounds core.ExamWeightBounds
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  checkscale - validate the configured grading scale and print its bands")
	fmt.Println("  classify -percent PERCENT - classify a percentage on the grading scale")
	fmt.Println("  combine -internal PERCENT:WEIGHT -terminal PERCENT:WEIGHT - combine an internal+terminal exam pair")
	fmt.Println("  gpa -subjects CREDITS:POINT[,CREDITS:POINT...] - compute a term GPA")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	classifyCmd := flag.NewFlagSet("classify", flag.ExitOnError)
	classifyPercent := classifyCmd.String("percent", "", "The percentage to classify, within [0, 100].")

	combineCmd := flag.NewFlagSet("combine", flag.ExitOnError)
	combineInternal := combineCmd.String("internal", "", "The internal exam as PERCENT:WEIGHT.")
	combineTerminal := combineCmd.String("terminal", "", "The terminal exam as PERCENT:WEIGHT.")

	gpaCmd := flag.NewFlagSet("gpa", flag.ExitOnError)
	gpaSubjects := gpaCmd.String("subjects", "", "Comma-separated CREDITS:POINT pairs, one per subject.")

	switch args[1] {
	case "checkscale":
		return cli.checkScale()
	case "classify":
		if err := classifyCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *classifyPercent == "" {
			classifyCmd.Usage()
			return errHelp
		}
		return cli.classify(*classifyPercent)
	case "combine":
		if err := combineCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *combineInternal == "" || *combineTerminal == "" {
			combineCmd.Usage()
			return errHelp
		}
		return cli.combine(*combineInternal, *combineTerminal)
	case "gpa":
		if err := gpaCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *gpaSubjects == "" {
			gpaCmd.Usage()
			return errHelp
		}
		return cli.gpa(*gpaSubjects)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) checkScale() error {
	fmt.Println("grading scale OK:")
	for _, band := range cli.scale.Bands() {
		fmt.Printf("  >= %5.2f%%  %-3s %.1f\n", band.MinPercent, band.Label, band.Point)
	}
	return nil
}

func (cli *commandLine) classify(percent string) error {
	p, err := strconv.ParseFloat(percent, 64)
	if err != nil {
		return fmt.Errorf("percent must be a number (got %q)", percent)
	}
	grade, err := cli.scale.Classify(p)
	if err != nil {
		return err
	}
	fmt.Printf("%.2f%% => %s (%.1f)\n", p, grade.Label, grade.Point)
	return nil
}

func (cli *commandLine) combine(internal, terminal string) error {
	internalExam, err := parseAssessment(internal)
	if err != nil {
		return err
	}
	terminalExam, err := parseAssessment(terminal)
	if err != nil {
		return err
	}
	combined, err := grading.CombineInternalTerminal(cli.scale, cli.bounds, internalExam, terminalExam)
	if err != nil {
		return err
	}
	fmt.Printf("final: %.2f%% => %s (%.1f)\n", combined.FinalPercent, combined.Grade.Label, combined.Grade.Point)
	return nil
}

func (cli *commandLine) gpa(subjects string) error {
	parsed, err := parseSubjects(subjects)
	if err != nil {
		return err
	}
	fmt.Printf("term GPA: %.2f\n", grading.TermGPA(parsed))
	return nil
}

func parseAssessment(s string) (grading.WeightedAssessment, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return grading.WeightedAssessment{}, fmt.Errorf("exam must be of form PERCENT:WEIGHT (got %q)", s)
	}
	percent, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || percent < 0 || percent > 100 {
		return grading.WeightedAssessment{}, fmt.Errorf("percent must be within [0, 100] (got %q)", parts[0])
	}
	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || weight < 0 || weight > 100 {
		return grading.WeightedAssessment{}, fmt.Errorf("weight must be within [0, 100] (got %q)", parts[1])
	}
	return grading.WeightedAssessment{Percent: percent, Weight: weight}, nil
}

func parseSubjects(s string) ([]grading.SubjectResult, error) {
	pairs := strings.Split(s, ",")
	subjects := make([]grading.SubjectResult, 0, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("subject must be of form CREDITS:POINT (got %q)", pair)
		}
		credits, err := strconv.Atoi(parts[0])
		if err != nil || credits < 0 {
			return nil, fmt.Errorf("credits must be a non-negative number (got %q)", parts[0])
		}
		point, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || point < 0 {
			return nil, fmt.Errorf("point must be a non-negative number (got %q)", parts[1])
		}
		subjects = append(subjects, grading.SubjectResult{CreditHours: credits, GradePoint: point})
	}
	return subjects, nil
}
