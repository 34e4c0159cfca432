// Command admintoken issues an admin access token for the operator API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func main() {
	subject := flag.String("subject", "", "Operator id (uuid); a random one is used when empty")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	token, err := issueToken(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

func issueToken(rawSubject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}

	subject := uuid.New()
	if rawSubject != "" {
		parsed, err := uuid.Parse(rawSubject)
		if err != nil {
			return "", errors.Wrap(err, "invalid subject")
		}
		subject = parsed
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", err
	}

	return tokenSvc.GenerateToken(subject, []string{entity.RoleAdmin.String()}, ttl)
}
