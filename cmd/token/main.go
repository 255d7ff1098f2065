// Command token mints and checks viewer tokens for the KPI API.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cmlabs-hris/kpi-dashboard/internal/config"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	store := flag.String("store", cfg.Store.PCNumber, "store id the token grants, or * for every store")
	ttl := flag.String("ttl", cfg.Auth.ViewerTTL, "token lifetime, e.g. 24h")
	verify := flag.String("verify", "", "print the store of an existing token instead of minting one")
	flag.Parse()

	if !cfg.AuthEnabled() {
		log.Fatal("AUTH_JWT_SECRET is not set")
	}
	svc := jwt.NewJWTService(cfg.Auth.Secret)

	if *verify != "" {
		storeID, err := svc.ValidateViewerToken(*verify)
		if err != nil {
			log.Fatal("Invalid token: ", err)
		}
		fmt.Println(storeID)
		return
	}

	token, expiresAt, err := svc.GenerateViewerToken(*store, *ttl)
	if err != nil {
		log.Fatal("Failed to mint token: ", err)
	}
	fmt.Fprintf(os.Stderr, "store=%s expires=%s\n", *store, time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
	fmt.Println(token)
}
