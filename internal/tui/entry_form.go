package tui

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldPhoto = iota
	fieldCalories
	fieldProtein
	fieldCarbs
	fieldFat
	fieldDescription
)

const msgPhotoUnreadable = "Could not read the photo file."

var entryFieldLabels = []string{
	fieldPhoto:       "Photo path",
	fieldCalories:    "Calories (kcal)",
	fieldProtein:     "Protein (g)",
	fieldCarbs:       "Carbs (g)",
	fieldFat:         "Fat (g)",
	fieldDescription: "Description",
}

// entryFormModel edits one food entry. The nutrient draft and the state of
// the photo inference live in a [service.DraftForm], so an estimate that
// arrives after the user picked another photo is dropped.
type entryFormModel struct {
	editingID    int64
	currentImage string

	inputs []textinput.Model
	focus  int

	draft   *service.DraftForm
	spinner spinner.Model

	// imageData was read from imagePath by the last applied inference.
	imageData []byte
	imagePath string

	saving bool
	errMsg string
	notice string
}

func newEntryForm(initial models.InferenceDraft, editingID int64, currentImage string) entryFormModel {
	inputs := make([]textinput.Model, len(entryFieldLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	inputs[fieldPhoto].Placeholder = "/path/to/photo.jpg"
	inputs[fieldPhoto].CharLimit = 1024
	inputs[fieldDescription].Placeholder = "what was it?"
	inputs[fieldDescription].CharLimit = 500
	for _, i := range []int{fieldCalories, fieldProtein, fieldCarbs, fieldFat} {
		inputs[i].Placeholder = "0"
		inputs[i].CharLimit = 10
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	f := entryFormModel{
		editingID:    editingID,
		currentImage: currentImage,
		inputs:       inputs,
		draft:        service.NewDraftForm(initial),
		spinner:      s,
	}
	if editingID != 0 {
		f.fillDraft(initial)
	}
	f.inputs[fieldPhoto].Focus()

	return f
}

func (f *entryFormModel) fillDraft(d models.InferenceDraft) {
	f.inputs[fieldCalories].SetValue(strconv.Itoa(d.Calories))
	f.inputs[fieldProtein].SetValue(strconv.Itoa(d.Protein))
	f.inputs[fieldCarbs].SetValue(strconv.Itoa(d.Carbs))
	f.inputs[fieldFat].SetValue(strconv.Itoa(d.Fat))
	f.inputs[fieldDescription].SetValue(d.Description)
}

func (f *entryFormModel) photoPath() string {
	return expandHome(strings.TrimSpace(f.inputs[fieldPhoto].Value()))
}

// parse reads the nutrient fields. Values typed by the user are kept in the
// draft so a failed inference leaves them as they are.
func (f *entryFormModel) parse() (models.InferenceDraft, error) {
	d, err := service.ParseDraft(
		f.inputs[fieldCalories].Value(),
		f.inputs[fieldProtein].Value(),
		f.inputs[fieldCarbs].Value(),
		f.inputs[fieldFat].Value(),
		f.inputs[fieldDescription].Value(),
	)
	if err != nil {
		return models.InferenceDraft{}, err
	}
	f.draft.SetDraft(d)
	return d, nil
}

// beginInference starts estimating the photo in the photo field.
func (f *entryFormModel) beginInference(ctx context.Context, infer service.ClientInferenceService) tea.Cmd {
	path := f.photoPath()
	if path == "" {
		f.errMsg = "Select a photo first."
		return nil
	}

	f.errMsg = ""
	f.notice = ""
	gen, reqCtx := f.draft.Begin(ctx)

	return tea.Batch(f.spinner.Tick, cmdInferNutrients(reqCtx, infer, gen, path))
}

// applyInference reports whether msg belonged to the latest request.
func (f *entryFormModel) applyInference(msg inferenceDoneMsg) bool {
	if !f.draft.Complete(msg.gen, msg.result, msg.err) {
		return false
	}

	if msg.err != nil {
		f.errMsg = humanizeError(msg.err)
		return true
	}

	f.imageData = msg.imageData
	f.imagePath = msg.photoPath
	f.fillDraft(f.draft.Draft())
	f.errMsg = ""
	f.notice = "Values estimated from the photo. Check them before saving."
	return true
}

func (f *entryFormModel) reset() {
	if f.draft != nil {
		f.draft.Reset()
	}
}

func (f entryFormModel) title() string {
	if f.editingID != 0 {
		return "EDIT ENTRY #" + strconv.FormatInt(f.editingID, 10)
	}
	return "NEW ENTRY"
}

func (f entryFormModel) View() string {
	var b strings.Builder

	for i, in := range f.inputs {
		marker := " "
		if i == f.focus {
			marker = ">"
		}
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(padRight(entryFieldLabels[i], 16))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if f.editingID != 0 && f.currentImage != "" {
		b.WriteString("\nCurrent photo: ")
		b.WriteString(fitText(f.currentImage, 60))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case f.draft.Loading():
		b.WriteString(f.spinner.View())
		b.WriteString(" Estimating nutrients...\n")
	case f.saving:
		b.WriteString("[Saving...]\n")
	default:
		b.WriteString("[Save]\n")
	}

	if f.notice != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(f.notice))
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(f.title(), strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter on photo / ctrl+p: estimate │ ctrl+s: save │ esc: cancel")
}

func cmdInferNutrients(ctx context.Context, infer service.ClientInferenceService, gen uint64, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return inferenceDoneMsg{gen: gen, err: &service.InferenceError{Message: msgPhotoUnreadable, Err: err}}
		}

		result, err := infer.InferNutrients(ctx, data)
		return inferenceDoneMsg{
			gen:       gen,
			result:    result,
			imageData: data,
			photoPath: path,
			err:       err,
		}
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func padRight(v string, width int) string {
	if len(v) >= width {
		return v
	}
	return v + strings.Repeat(" ", width-len(v))
}
