// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var goalFieldLabels = []string{"Calories (kcal)", "Protein (g)", "Carbs (g)", "Fat (g)"}

// goalsFormModel edits the daily intake goals. The server rejects values that
// are not positive; the form checks the same rule before sending.
type goalsFormModel struct {
	inputs  []textinput.Model
	focus   int
	loading bool
	saving  bool
	errMsg  string
}

func newGoalsForm() goalsFormModel {
	inputs := make([]textinput.Model, len(goalFieldLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 12
		inputs[i].CharLimit = 6
	}
	inputs[0].Focus()

	return goalsFormModel{inputs: inputs, loading: true}
}

func (f *goalsFormModel) fill(g models.DailyIntakeGoals) {
	f.inputs[0].SetValue(strconv.Itoa(g.Calories))
	f.inputs[1].SetValue(strconv.Itoa(g.Protein))
	f.inputs[2].SetValue(strconv.Itoa(g.Carbs))
	f.inputs[3].SetValue(strconv.Itoa(g.Fat))
}

func (f goalsFormModel) parse() (models.DailyIntakeGoals, error) {
	values := make([]int, len(f.inputs))
	for i, in := range f.inputs {
		v, err := strconv.Atoi(strings.TrimSpace(in.Value()))
		if err != nil || v <= 0 {
			return models.DailyIntakeGoals{}, fmt.Errorf("%s must be a positive whole number", strings.ToLower(goalFieldLabels[i]))
		}
		values[i] = v
	}

	return models.DailyIntakeGoals{
		Calories: values[0],
		Protein:  values[1],
		Carbs:    values[2],
		Fat:      values[3],
	}, nil
}

func (f goalsFormModel) View() string {
	var b strings.Builder

	if f.loading {
		return renderPage("DAILY GOALS", "Loading...", "esc: back")
	}

	for i, in := range f.inputs {
		marker := " "
		if i == f.focus {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-16s │ [%s]\n", marker, goalFieldLabels[i], in.View()))
	}

	if f.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage("DAILY GOALS", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: back")
}
