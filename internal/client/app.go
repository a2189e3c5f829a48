// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/griswall/playoff-pool/internal/config"
	"github.com/griswall/playoff-pool/internal/logger"
)

var _ Client = (*App)(nil)

type App struct {
	services Services
	command  string
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(services Services, command string, out io.Writer, log *logger.Logger) (*App, error) {
	switch command {
	case config.CommandStatus, config.CommandLogout:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	return &App{
		services: services,
		command:  command,
		out:      out,
		logger:   log.WithComponent("app"),
	}, nil
}

// Run executes the command. Backend calls made on its behalf log through a
// context logger tagged with the command.
func (a *App) Run(ctx context.Context) error {
	defer a.services.Close()

	ctx = a.logger.With().Str("command", a.command).Logger().WithContext(ctx)

	switch a.command {
	case config.CommandLogout:
		return a.logout(ctx)
	default:
		return a.status(ctx)
	}
}

func (a *App) status(ctx context.Context) error {
	cfg, err := a.services.GetConfig()
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	fmt.Fprintf(a.out, "Backend: %s\n", cfg.URL)

	client, err := a.services.GetClient()
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	if session, ok := client.Session(); ok {
		fmt.Fprintf(a.out, "Session: %s\n", displayUser(session.User.Email, session.User.ID))
	} else {
		fmt.Fprintln(a.out, "Session: none")
	}

	fmt.Fprintf(a.out, "Admin: %s\n", yesNo(a.services.CheckIsAdmin(ctx)))
	return nil
}

func (a *App) logout(ctx context.Context) error {
	// builds the handle so a persisted session is restored before signing out
	if _, err := a.services.GetClient(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	if err := a.services.Logout(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("signed out")
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func displayUser(email, id string) string {
	switch {
	case email != "":
		return email
	case id != "":
		return id
	default:
		return "anonymous"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
