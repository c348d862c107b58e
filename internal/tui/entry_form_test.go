// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writePhoto(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meal.jpg")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func openNewEntry(t *testing.T, m mainLoopModel) mainLoopModel {
	t.Helper()

	m, _ = update(t, m, keyPress("n"))
	require.Equal(t, screenEntryForm, m.screen)
	return m
}

// ── inference ────────────────────────────────────────────────────────────────

func TestEntryForm_EstimateThenSave(t *testing.T) {
	m, mk := newTestLoop(t)
	m = openNewEntry(t, m)
	path := writePhoto(t, "jpeg-bytes")
	m.form.inputs[fieldPhoto].SetValue(path)

	mk.infer.EXPECT().
		InferNutrients(gomock.Any(), []byte("jpeg-bytes")).
		Return(models.InferenceResult{Calories: 420.4, Protein: 30.6, Carbs: 12, Fat: 18, Description: "salmon"}, nil)

	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.form.draft.Loading())
	assert.Equal(t, fieldCalories, m.form.focus)
	assert.Contains(t, m.View(), "Estimating nutrients")

	done, ok := findMsg[inferenceDoneMsg](runCmd(cmd))
	require.True(t, ok)
	m, _ = update(t, m, done)

	assert.False(t, m.form.draft.Loading())
	assert.Equal(t, "420", m.form.inputs[fieldCalories].Value())
	assert.Equal(t, "31", m.form.inputs[fieldProtein].Value())
	assert.Equal(t, "12", m.form.inputs[fieldCarbs].Value())
	assert.Equal(t, "18", m.form.inputs[fieldFat].Value())
	assert.Equal(t, "salmon", m.form.inputs[fieldDescription].Value())
	assert.NotEmpty(t, m.form.notice)

	saved := models.FoodEntry{ID: 5, Calories: 420, CreatedAt: testNow}
	mk.food.EXPECT().
		Save(gomock.Any(), testSession, models.InferenceDraft{Calories: 420, Protein: 31, Carbs: 12, Fat: 18, Description: "salmon"}, []byte("jpeg-bytes")).
		Return(saved, nil)

	m, cmd = update(t, m, keyPress("ctrl+s"))
	assert.True(t, m.form.saving)

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])

	assert.Equal(t, screenDay, m.screen)
	assert.Equal(t, "Entry added", m.status)
	assert.True(t, m.loading)
	assert.Equal(t, models.StartOfDay(testNow), m.day)
}

func TestEntryForm_StaleEstimateIsDropped(t *testing.T) {
	m, _ := newTestLoop(t)
	m = openNewEntry(t, m)
	m.form.inputs[fieldPhoto].SetValue(writePhoto(t, "first"))

	// two requests in a row; neither command is run, the answers are faked
	m, _ = update(t, m, keyPress("ctrl+p"))
	first := m.form.draft.Generation()
	m, _ = update(t, m, keyPress("ctrl+p"))
	second := m.form.draft.Generation()

	m, _ = update(t, m, inferenceDoneMsg{gen: first, result: models.InferenceResult{Calories: 999}})
	assert.True(t, m.form.draft.Loading())
	assert.Empty(t, m.form.inputs[fieldCalories].Value())

	m, _ = update(t, m, inferenceDoneMsg{gen: second, result: models.InferenceResult{Calories: 250}})
	assert.False(t, m.form.draft.Loading())
	assert.Equal(t, "250", m.form.inputs[fieldCalories].Value())
}

func TestEntryForm_FailedEstimateKeepsTypedValues(t *testing.T) {
	m, _ := newTestLoop(t)
	m = openNewEntry(t, m)
	m.form.inputs[fieldPhoto].SetValue(writePhoto(t, "x"))
	m.form.inputs[fieldCalories].SetValue("300")

	m, _ = update(t, m, keyPress("ctrl+p"))
	m, _ = update(t, m, inferenceDoneMsg{gen: m.form.draft.Generation(), err: &service.InferenceError{Message: "Could not estimate nutrients."}})

	assert.False(t, m.form.draft.Loading())
	assert.Equal(t, "Could not estimate nutrients.", m.form.errMsg)
	assert.Equal(t, "300", m.form.inputs[fieldCalories].Value())
}

func TestEntryForm_EstimateWithoutPhoto(t *testing.T) {
	m, _ := newTestLoop(t)
	m = openNewEntry(t, m)

	m, cmd := update(t, m, keyPress("ctrl+p"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Select a photo first.", m.form.errMsg)
	assert.False(t, m.form.draft.Loading())
}

func TestCmdInferNutrients_UnreadableFile(t *testing.T) {
	cmd := cmdInferNutrients(context.Background(), nil, 3, filepath.Join(t.TempDir(), "missing.jpg"))

	msg, ok := cmd().(inferenceDoneMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(3), msg.gen)

	var inferErr *service.InferenceError
	require.ErrorAs(t, msg.err, &inferErr)
	assert.Equal(t, msgPhotoUnreadable, inferErr.Message)
}

func TestEntryForm_EscCancelsPendingEstimate(t *testing.T) {
	m, _ := newTestLoop(t)
	m = openNewEntry(t, m)
	m.form.inputs[fieldPhoto].SetValue(writePhoto(t, "x"))

	m, _ = update(t, m, keyPress("ctrl+p"))
	form := m.form
	gen := form.draft.Generation()
	m, _ = update(t, m, keyPress("esc"))

	assert.Equal(t, screenDay, m.screen)
	assert.False(t, form.draft.Loading())

	// the answer to the cancelled request is ignored
	m, _ = update(t, m, inferenceDoneMsg{gen: gen, result: models.InferenceResult{Calories: 1}})
	assert.Equal(t, screenDay, m.screen)
}

func TestEntryForm_EstimateFromClosedFormIsDropped(t *testing.T) {
	m, _ := newTestLoop(t)
	m = openNewEntry(t, m)
	m.form.inputs[fieldPhoto].SetValue(writePhoto(t, "first"))

	m, _ = update(t, m, keyPress("ctrl+p"))
	closed := m.form.draft.Generation()
	m, _ = update(t, m, keyPress("esc"))

	m = openNewEntry(t, m)
	m.form.inputs[fieldPhoto].SetValue(writePhoto(t, "second"))
	m, _ = update(t, m, keyPress("ctrl+p"))
	current := m.form.draft.Generation()
	require.NotEqual(t, closed, current)

	m, _ = update(t, m, inferenceDoneMsg{gen: closed, result: models.InferenceResult{Calories: 999, Description: "from the closed form"}})
	assert.True(t, m.form.draft.Loading())
	assert.Empty(t, m.form.inputs[fieldCalories].Value())
	assert.Empty(t, m.form.inputs[fieldDescription].Value())

	m, _ = update(t, m, inferenceDoneMsg{gen: closed, err: context.Canceled})
	assert.True(t, m.form.draft.Loading(), "a late cancellation does not end the newer request")
	assert.Empty(t, m.form.errMsg)

	m, _ = update(t, m, inferenceDoneMsg{gen: current, result: models.InferenceResult{Calories: 310, Description: "soup"}})
	assert.False(t, m.form.draft.Loading())
	assert.Equal(t, "310", m.form.inputs[fieldCalories].Value())
	assert.Equal(t, "soup", m.form.inputs[fieldDescription].Value())
}

// ── saving ───────────────────────────────────────────────────────────────────

func TestEntryForm_SaveValidation(t *testing.T) {
	m, _ := newTestLoop(t)
	m = openNewEntry(t, m)
	m.form.inputs[fieldCalories].SetValue("abc")
	m.form.inputs[fieldProtein].SetValue("1")
	m.form.inputs[fieldCarbs].SetValue("1")
	m.form.inputs[fieldFat].SetValue("1")

	m, cmd := update(t, m, keyPress("ctrl+s"))
	assert.Nil(t, cmd)
	assert.False(t, m.form.saving)
	assert.Contains(t, m.form.errMsg, "calories")
}

func TestEntryForm_UpdateKeepsPhotoWhenNoneChosen(t *testing.T) {
	m, mk := newTestLoop(t)
	m, _ = update(t, m, dayLoadedMsg{day: m.day, entries: []models.FoodEntry{lunch}})
	m, _ = update(t, m, keyPress("e"))
	m.form.inputs[fieldCalories].SetValue("650")

	mk.food.EXPECT().
		Update(gomock.Any(), testSession, int64(2), models.InferenceDraft{Calories: 650, Protein: 35, Carbs: 50, Fat: 25, Description: "salmon bowl"}, []byte(nil)).
		Return(lunch, nil)

	m, cmd := update(t, m, keyPress("ctrl+s"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	m, _ = update(t, m, msgs[0])
	assert.Equal(t, "Entry updated", m.status)
	assert.Equal(t, screenDay, m.screen)
}

func TestEntryForm_ServerValidationStaysInForm(t *testing.T) {
	m, _ := newTestLoop(t)
	m = openNewEntry(t, m)
	m.form.saving = true

	m, _ = update(t, m, entrySavedMsg{err: service.ErrValidation})
	assert.Equal(t, screenEntryForm, m.screen)
	assert.False(t, m.form.saving)
	assert.NotEmpty(t, m.form.errMsg)
	assert.Nil(t, m.overlay)

	m, _ = update(t, m, entrySavedMsg{err: service.ErrUpload})
	assert.Equal(t, screenEntryForm, m.screen)
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.overlay.message, "photo could not be uploaded")
}

func TestEntryForm_EnterWalksFieldsAndSavesOnLast(t *testing.T) {
	m, mk := newTestLoop(t)
	m = openNewEntry(t, m)

	// skip the photo field with tab; enter on a nutrient field moves on
	m, _ = update(t, m, keyPress("tab"))
	for _, v := range []string{"100", "1", "2", "3"} {
		m.form.inputs[m.form.focus].SetValue(v)
		m, _ = update(t, m, keyPress("enter"))
	}
	require.Equal(t, fieldDescription, m.form.focus)
	m.form.inputs[fieldDescription].SetValue("apple")

	mk.food.EXPECT().
		Save(gomock.Any(), testSession, models.InferenceDraft{Calories: 100, Protein: 1, Carbs: 2, Fat: 3, Description: "apple"}, []byte(nil)).
		Return(models.FoodEntry{ID: 1}, nil)

	m, cmd := update(t, m, keyPress("enter"))
	assert.True(t, m.form.saving)
	runCmd(cmd)
}
