package main

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/yungbote/questline-backend/internal/app"
	"github.com/yungbote/questline-backend/internal/platform/authtoken"
)

var (
	tokenUserID int64
	tokenLevel  string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development bearer token signed with JWT_SECRET_KEY",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().Int64Var(&tokenUserID, "user-id", 0, "User id to embed in the token")
	tokenCmd.Flags().StringVar(&tokenLevel, "level", "User", "Level name claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("user-id")
}

func runToken(cmd *cobra.Command, args []string) error {
	if tokenUserID <= 0 {
		return fmt.Errorf("--user-id must be positive")
	}
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	now := time.Now()
	tok, err := authtoken.Sign(cfg.JWTSecretKey, authtoken.Claims{
		UserID:    tokenUserID,
		LevelName: tokenLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
