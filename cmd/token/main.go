// Command token registers a user and prints an access token for them, or
// prints a fresh token for an existing user id.
//
//	token -id <user-id>
//	token -username alice -email alice@example.com [-admin]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"tablebook/config"
	"tablebook/di"
	"tablebook/internal/domains/user/model/dto"
	"tablebook/shared/logger"

	"github.com/rs/zerolog/log"
)

const timeout = 10 * time.Second

type output struct {
	UserID      string `json:"userId"`
	Role        string `json:"role,omitempty"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

func main() {
	userID := flag.String("id", "", "existing user id")
	username := flag.String("username", "", "username for a new user")
	email := flag.String("email", "", "email for a new user")
	admin := flag.Bool("admin", false, "grant admin rights to the new user")
	flag.Parse()

	logger.InitLogger()
	logger.SetLogLevel(config.Get())

	if *userID == "" && *email == "" {
		flag.Usage()
		os.Exit(2) //nolint:mnd
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	users := di.InitializeUserService()

	out := output{UserID: *userID}

	if out.UserID == "" {
		user, err := users.Create(ctx, dto.CreateUserRequest{
			Username: *username,
			Email:    *email,
			IsAdmin:  *admin,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create user")
		}

		out.UserID = user.ID
		out.Role = user.Role
	}

	token, err := users.IssueToken(ctx, out.UserID)
	if err != nil {
		log.Fatal().Err(err).Str("user_id", out.UserID).Msg("Failed to issue token")
	}

	out.AccessToken = token.AccessToken
	out.ExpiresIn = token.ExpiresIn

	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		log.Fatal().Err(err).Msg("Failed to write token")
	}
}
