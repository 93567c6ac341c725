// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package main

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/quillfeed/quillfeed/internal/config"
	"github.com/quillfeed/quillfeed/internal/identity"
	identitypg "github.com/quillfeed/quillfeed/internal/identity/postgres"
	"github.com/quillfeed/quillfeed/internal/store"
)

// accountServices bundles the identity services the account subcommands use.
type accountServices struct {
	accounts   *identity.AccountService
	activation *identity.ActivationService
}

// AccountDeps contains injectable dependencies for the account commands.
// All fields with nil values will use their default implementations.
type AccountDeps struct {
	// ServicesFactory builds the identity services. The returned cleanup
	// function releases the underlying connection pool.
	// Default: connect to PostgreSQL and wire the log mailer.
	ServicesFactory func(ctx context.Context, cfg *config.Config) (*accountServices, func(), error)
}

func defaultServicesFactory(ctx context.Context, cfg *config.Config) (*accountServices, func(), error) {
	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	repo := identitypg.NewAccountRepository(pool)
	hasher := identity.NewBcryptHasher(cfg.DigestCost)
	mailer := identity.NewLogMailer(slog.Default())

	accounts, err := identity.NewAccountService(repo, hasher)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	activation, err := identity.NewActivationService(repo, hasher, mailer)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	return &accountServices{accounts: accounts, activation: activation}, pool.Close, nil
}

// NewAccountCmd creates the account subcommand tree.
func NewAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Administer accounts",
	}

	cmd.AddCommand(newAccountCreateCmd(nil))
	cmd.AddCommand(newAccountActivateCmd(nil))
	cmd.AddCommand(newAccountDeleteCmd(nil))

	return cmd
}

// accountCreateConfig holds configuration for the account create command.
type accountCreateConfig struct {
	name     string
	email    string
	password string
}

func newAccountCreateCmd(deps *AccountDeps) *cobra.Command {
	cfg := &accountCreateConfig{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account and send its activation email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAccountCreate(cmd, cfg, deps)
		},
	}

	cmd.Flags().StringVar(&cfg.name, "name", "", "display name")
	cmd.Flags().StringVar(&cfg.email, "email", "", "email address")
	cmd.Flags().StringVar(&cfg.password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runAccountCreate(cmd *cobra.Command, createCfg *accountCreateConfig, deps *AccountDeps) error {
	svcs, cleanup, err := resolveServices(cmd, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()

	account, token, err := svcs.accounts.Register(ctx, createCfg.name, createCfg.email, createCfg.password)
	if err != nil {
		return err
	}

	if err := svcs.activation.SendActivationEmail(ctx, account, token); err != nil {
		return err
	}

	cmd.Printf("Account created: %s (%s)\n", account.ID, account.Email)
	cmd.Println("Activation email sent")
	return nil
}

// accountActivateConfig holds configuration for the account activate command.
type accountActivateConfig struct {
	email string
	token string
}

func newAccountActivateCmd(deps *AccountDeps) *cobra.Command {
	cfg := &accountActivateConfig{}

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Activate an account with its activation token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAccountActivate(cmd, cfg, deps)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "email address")
	cmd.Flags().StringVar(&cfg.token, "token", "", "activation token")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func runAccountActivate(cmd *cobra.Command, activateCfg *accountActivateConfig, deps *AccountDeps) error {
	svcs, cleanup, err := resolveServices(cmd, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := svcs.activation.Confirm(cmd.Context(), activateCfg.email, activateCfg.token)
	if err != nil {
		return err
	}

	cmd.Printf("Account activated: %s (%s)\n", account.ID, account.Email)
	return nil
}

func newAccountDeleteCmd(deps *AccountDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account and its follows and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ulid.Parse(args[0])
			if err != nil {
				return oops.Code("INVALID_ACCOUNT_ID").
					With("argument", args[0]).
					Wrap(err)
			}

			svcs, cleanup, resolveErr := resolveServices(cmd, deps)
			if resolveErr != nil {
				return resolveErr
			}
			defer cleanup()

			if err := svcs.accounts.Delete(cmd.Context(), id); err != nil {
				return err
			}

			cmd.Printf("Account deleted: %s\n", id)
			return nil
		},
	}
}

// resolveServices loads config and builds the identity services, honoring
// injected dependencies.
func resolveServices(cmd *cobra.Command, deps *AccountDeps) (*accountServices, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	factory := defaultServicesFactory
	if deps != nil && deps.ServicesFactory != nil {
		factory = deps.ServicesFactory
	}

	return factory(cmd.Context(), cfg)
}
