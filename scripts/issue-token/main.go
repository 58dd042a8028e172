// scripts/issue-token/main.go
//
// Prints a bearer token for the /api routes when security.enable_jwt is on.
// The token is signed with security.secret_key (or SECRET_KEY).
//
// Usage:
//   go run ./scripts/issue-token <user-id> [ttl]

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"personal-assistant/config"
	"personal-assistant/pkg/scope"
)

const defaultTTL = 30 * 24 * time.Hour

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: issue-token <user-id> [ttl]")
	}
	userID := os.Args[1]

	ttl := defaultTTL
	if len(os.Args) > 2 {
		d, err := time.ParseDuration(os.Args[2])
		if err != nil {
			log.Fatalf("Invalid ttl %q: %v", os.Args[2], err)
		}
		ttl = d
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	manager, err := scope.New(cfg.Security.SecretKey)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	token, err := manager.Issue(userID, ttl)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Println(token)
}
