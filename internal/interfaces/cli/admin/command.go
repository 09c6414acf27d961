package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/subkeeper/internal/application/user/usecases"
	"github.com/orris-inc/subkeeper/internal/infrastructure/auth"
	"github.com/orris-inc/subkeeper/internal/infrastructure/config"
	"github.com/orris-inc/subkeeper/internal/infrastructure/database"
	"github.com/orris-inc/subkeeper/internal/infrastructure/repository"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

var (
	env        string
	configPath string
	email      string
	password   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or promote an administrator",
		Long:  `Create an administrator account. An existing user with the same email is promoted and gets the new password.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Administrator email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Administrator password, at least 6 characters (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	uc := usecases.NewCreateAdminUseCase(
		repository.NewUserRepository(database.Get(), log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	result, err := uc.Execute(cmd.Context(), usecases.CreateAdminCommand{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("Administrator ready: id=%d email=%s\n", result.ID, result.Email)
	return nil
}
