package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shop/internal/adapter"
	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/models"
)

func main() {
	username := flag.String("u", "", "username")
	password := flag.String("p", "", "password")
	signUp := flag.Bool("signup", false, "create the account before logging in")
	profile := flag.String("profile", "", "look up this user's profile instead of your own")
	flag.Parse()

	log := logger.NewLogger("go-shop-client")
	if err := logger.SetLevel("info"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx := context.Background()
	creds := models.Credentials{Username: *username, Password: *password}

	if *signUp {
		_, err = serverAdapter.SignUp(ctx, creds)
		if err != nil && !errors.Is(err, adapter.ErrConflict) {
			log.Fatal().Err(err).Msg("sign up failed")
		}
	}

	if _, err = serverAdapter.Login(ctx, creds); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	var user models.User
	if *profile != "" {
		user, err = serverAdapter.Profile(ctx, *profile)
	} else {
		user, err = serverAdapter.Me(ctx)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting profile")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(user); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
