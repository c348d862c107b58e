package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-nutri-track/internal/mock"
	"github.com/MKhiriev/go-nutri-track/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T) (RootModel, *mock.MockClientAuthService) {
	t.Helper()

	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	ctx := context.Background()
	pages := map[string]tea.Model{
		pageWelcome:  NewWelcomeModel(),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
	}
	return NewRootModel(pages, pageWelcome, models.NewAppBuildInfo("1.2.0", "", "")), auth
}

func rootUpdate(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()

	next, cmd := r.Update(msg)
	out, ok := next.(RootModel)
	require.True(t, ok)
	return out, cmd
}

// ── RootModel ────────────────────────────────────────────────────────────────

func TestRootModel_Navigation(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := rootUpdate(t, r, keyPress("down"))
	assert.Nil(t, cmd)
	r, cmd = rootUpdate(t, r, keyPress("enter"))
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageRegister, nav.Page)

	r, _ = rootUpdate(t, r, nav)
	assert.Contains(t, r.View(), "REGISTER")

	r, _ = rootUpdate(t, r, NavigateTo{Page: "missing"})
	assert.Contains(t, r.View(), "REGISTER")
}

func TestRootModel_BuildInfoOnlyOnWelcome(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = rootUpdate(t, r, keyPress("v"))
	assert.Contains(t, r.View(), "Version: 1.2.0")

	r, _ = rootUpdate(t, r, keyPress("esc"))
	assert.Contains(t, r.View(), "NUTRI TRACK")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := rootUpdate(t, r, keyPress("ctrl+c"))
	assert.True(t, r.quitByUser)
	assert.True(t, isQuit(cmd))
}

func TestRootModel_SuccessfulLoginFinishes(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := rootUpdate(t, r, LoginResult{Session: testSession})
	assert.Equal(t, testSession, r.session)
	assert.True(t, isQuit(cmd))
}

// ── LoginModel ───────────────────────────────────────────────────────────────

func TestLoginModel_Submit(t *testing.T) {
	r, auth := newTestRoot(t)
	r, _ = rootUpdate(t, r, NavigateTo{Page: pageLogin})

	// empty fields never reach the service
	r, cmd := rootUpdate(t, r, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, r.View(), "Login and password are required.")

	login := r.current.(*LoginModel)
	login.inputs[0].SetValue("alice")
	login.inputs[1].SetValue("secret")

	auth.EXPECT().Login(gomock.Any(), models.User{Login: "alice", Password: "secret"}).
		Return(models.Session{}, assert.AnError)

	r, cmd = rootUpdate(t, r, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, login.submitting)

	r, _ = rootUpdate(t, r, cmd())
	assert.False(t, login.submitting)
	assert.Equal(t, assert.AnError.Error(), login.errMsg)
	assert.Zero(t, r.session)
}

// ── RegisterModel ────────────────────────────────────────────────────────────

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	r, auth := newTestRoot(t)
	r, _ = rootUpdate(t, r, NavigateTo{Page: pageRegister})

	reg := r.current.(*RegisterModel)
	reg.inputs[0].SetValue("bob")
	reg.inputs[1].SetValue("pw1")
	reg.inputs[2].SetValue("pw2")

	r, cmd := rootUpdate(t, r, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Passwords do not match.", reg.errMsg)

	reg.inputs[2].SetValue("pw1")
	bob := models.Session{UserID: 4, Login: "bob", Token: "t"}
	auth.EXPECT().Register(gomock.Any(), models.User{Login: "bob", Password: "pw1"}).Return(bob, nil)

	r, cmd = rootUpdate(t, r, keyPress("enter"))
	require.NotNil(t, cmd)

	r, cmd = rootUpdate(t, r, cmd())
	assert.Equal(t, bob, r.session)
	assert.True(t, isQuit(cmd))
}
