package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-oauth-client/discovery"
	"github.com/jrsteele09/go-oauth-client/internal/config"
	"github.com/jrsteele09/go-oauth-client/oauth2"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("oauth2cl failed")
	}
}

func run(args []string) error {
	_ = godotenv.Load()
	settings := config.New()
	displayAppname(settings.GetAppName())

	if len(args) == 0 {
		return fmt.Errorf("usage: oauth2cl <authorize|exchange|refresh> [flags]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.ClientConfig(settings)
	if issuer := settings.GetIssuer(); issuer != "" {
		resolved, err := discovery.Resolve(ctx, issuer, cfg)
		if err != nil {
			return err
		}
		cfg = resolved
	}
	client := oauth2.NewClient(cfg, oauth2.WithLogger(log.Logger))

	switch args[0] {
	case "authorize":
		return authorize(client)
	case "exchange":
		return exchange(ctx, client, args[1:])
	case "refresh":
		return refresh(ctx, client, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func authorize(client *oauth2.Client) error {
	state := oauth2.NewState()
	req, err := client.AuthRequest(state)
	if err != nil {
		return err
	}
	fmt.Printf("Open in a browser:\n\n  %s\n\nstate (validate on callback): %s\n", req.URI, req.State)
	return nil
}

func exchange(ctx context.Context, client *oauth2.Client, args []string) error {
	fs := flag.NewFlagSet("exchange", flag.ContinueOnError)
	code := fs.String("code", "", "authorization code from the callback")
	state := fs.String("state", "", "state from the callback")
	username := fs.String("username", "", "resource owner username (password grant)")
	password := fs.String("password", "", "resource owner password (password grant)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tok, err := client.Exchange(ctx, oauth2.ExchangeParams{
		Code:     *code,
		State:    *state,
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}
	printToken(tok)
	return nil
}

func refresh(ctx context.Context, client *oauth2.Client, args []string) error {
	fs := flag.NewFlagSet("refresh", flag.ContinueOnError)
	refreshToken := fs.String("refresh-token", "", "refresh token from a previous exchange")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tok, err := client.Refresh(ctx, *refreshToken)
	if err != nil {
		return err
	}
	printToken(tok)
	return nil
}

func printToken(tok *oauth2.AccessToken) {
	fmt.Printf("access_token:  %s\ntoken_type:    %s\n", tok.Token, tok.Type)
	if tok.RefreshToken != "" {
		fmt.Printf("refresh_token: %s\n", tok.RefreshToken)
	}
	if expiry, ok := oauth2.Expiry(tok); ok {
		fmt.Printf("expires:       %s\n", expiry.Format(time.RFC3339))
	}
	for key, value := range tok.Params {
		fmt.Printf("%s: %v\n", key, value)
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
