// Package actions performs API calls and dispatches their outcome to the
// client store.
package actions

import (
	"context"
	"errors"
	"net/http"

	"github.com/khoahotran/devconnector/internal/client/api"
	"github.com/khoahotran/devconnector/internal/client/nav"
	"github.com/khoahotran/devconnector/internal/client/state"
)

type Creators struct {
	client  *api.Client
	store   state.Dispatcher
	alerter *state.Alerter
}

func NewCreators(client *api.Client, store state.Dispatcher, alerter *state.Alerter) *Creators {
	return &Creators{client: client, store: store, alerter: alerter}
}

// reportErrors pushes every message of err to the alert queue.
func (c *Creators) reportErrors(err error) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		c.alerter.SetAlert("Server Error", state.AlertDanger, 0)
		return
	}
	for _, msg := range apiErr.Messages() {
		c.alerter.SetAlert(msg, state.AlertDanger, 0)
	}
}

func profileErr(err error) state.ProfileErr {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return state.ProfileErr{Msg: apiErr.Msg, Status: apiErr.Status}
	}
	return state.ProfileErr{Msg: err.Error(), Status: http.StatusInternalServerError}
}

func (c *Creators) profileFailed(err error) error {
	c.reportErrors(err)
	c.store.Dispatch(state.ProfileError{Err: profileErr(err)})
	return err
}

// LoadUser restores the session for the token held by the client.
func (c *Creators) LoadUser(ctx context.Context) error {
	u, err := c.client.CurrentUser(ctx)
	if err != nil {
		c.client.SetToken("")
		c.store.Dispatch(state.AuthError{})
		return err
	}
	c.store.Dispatch(state.UserLoaded{User: *u})
	return nil
}

func (c *Creators) Register(ctx context.Context, name, email, password string) error {
	token, err := c.client.Register(ctx, name, email, password)
	if err != nil {
		c.reportErrors(err)
		c.store.Dispatch(state.RegisterFail{})
		return err
	}
	c.client.SetToken(token)
	c.store.Dispatch(state.RegisterSuccess{Token: token})
	return c.LoadUser(ctx)
}

func (c *Creators) Login(ctx context.Context, email, password string) error {
	token, err := c.client.Login(ctx, email, password)
	if err != nil {
		c.reportErrors(err)
		c.store.Dispatch(state.LoginFail{})
		return err
	}
	c.client.SetToken(token)
	c.store.Dispatch(state.LoginSuccess{Token: token})
	return c.LoadUser(ctx)
}

func (c *Creators) Logout() {
	c.client.SetToken("")
	c.store.Dispatch(state.ClearProfile{})
	c.store.Dispatch(state.Logout{})
}

// GetCurrentProfile loads the signed-in user's profile. A user without a
// profile ends in ProfileError without an alert.
func (c *Creators) GetCurrentProfile(ctx context.Context) error {
	p, err := c.client.MyProfile(ctx)
	if err != nil {
		c.store.Dispatch(state.ProfileError{Err: profileErr(err)})
		return err
	}
	c.store.Dispatch(state.GetProfile{Profile: *p})
	return nil
}

func (c *Creators) GetProfiles(ctx context.Context) error {
	c.store.Dispatch(state.ClearProfile{})
	ps, err := c.client.Profiles(ctx)
	if err != nil {
		c.store.Dispatch(state.ProfileError{Err: profileErr(err)})
		return err
	}
	c.store.Dispatch(state.GetProfiles{Profiles: ps})
	return nil
}

func (c *Creators) GetProfileByID(ctx context.Context, userID string) error {
	p, err := c.client.ProfileByUser(ctx, userID)
	if err != nil {
		c.store.Dispatch(state.ProfileError{Err: profileErr(err)})
		return err
	}
	c.store.Dispatch(state.GetProfile{Profile: *p})
	return nil
}

// CreateProfile saves the form. A new profile sends the user to the
// dashboard; an edit stays in place.
func (c *Creators) CreateProfile(ctx context.Context, form api.ProfileForm, edit bool) (nav.Action, error) {
	p, err := c.client.UpsertProfile(ctx, form)
	if err != nil {
		return nav.NoAction{}, c.profileFailed(err)
	}
	c.store.Dispatch(state.GetProfile{Profile: *p})
	if edit {
		c.alerter.SetAlert("profile updated", state.AlertSuccess, 0)
		return nav.NoAction{}, nil
	}
	c.alerter.SetAlert("profile created", state.AlertSuccess, 0)
	return nav.Navigate{To: nav.RouteDashboard}, nil
}

func (c *Creators) AddExperience(ctx context.Context, form api.ExperienceForm) (nav.Action, error) {
	p, err := c.client.AddExperience(ctx, form)
	if err != nil {
		return nav.NoAction{}, c.profileFailed(err)
	}
	c.store.Dispatch(state.UpdateProfile{Profile: *p})
	c.alerter.SetAlert("experience added", state.AlertSuccess, 0)
	return nav.Navigate{To: nav.RouteDashboard}, nil
}

func (c *Creators) DeleteExperience(ctx context.Context, id string) error {
	p, err := c.client.DeleteExperience(ctx, id)
	if err != nil {
		return c.profileFailed(err)
	}
	c.store.Dispatch(state.UpdateProfile{Profile: *p})
	c.alerter.SetAlert("experience deleted", state.AlertSuccess, 0)
	return nil
}

func (c *Creators) AddEducation(ctx context.Context, form api.EducationForm) (nav.Action, error) {
	p, err := c.client.AddEducation(ctx, form)
	if err != nil {
		return nav.NoAction{}, c.profileFailed(err)
	}
	c.store.Dispatch(state.UpdateProfile{Profile: *p})
	c.alerter.SetAlert("education added", state.AlertSuccess, 0)
	return nav.Navigate{To: nav.RouteDashboard}, nil
}

func (c *Creators) DeleteEducation(ctx context.Context, id string) error {
	p, err := c.client.DeleteEducation(ctx, id)
	if err != nil {
		return c.profileFailed(err)
	}
	c.store.Dispatch(state.UpdateProfile{Profile: *p})
	c.alerter.SetAlert("education deleted", state.AlertSuccess, 0)
	return nil
}

// DeleteAccount removes the profile and the user, then ends the session.
func (c *Creators) DeleteAccount(ctx context.Context) error {
	if err := c.client.DeleteAccount(ctx); err != nil {
		return c.profileFailed(err)
	}
	c.client.SetToken("")
	c.store.Dispatch(state.ClearProfile{})
	c.store.Dispatch(state.AccountDeleted{})
	c.alerter.SetAlert("account deleted", state.AlertSuccess, 0)
	return nil
}
