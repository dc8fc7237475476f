package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"frontdesk/internal/config"
	jwtsvc "frontdesk/internal/pkg/jwt"
)

// staff_token issues a bearer token for a desk clerk or manager.
func main() {
	id := flag.Int64("id", 1, "staff id")
	name := flag.String("name", "", "staff display name")
	role := flag.String("role", jwtsvc.RoleDesk, "desk or manager")
	flag.Parse()

	if *role != jwtsvc.RoleDesk && *role != jwtsvc.RoleManager {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	token, err := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(*id, *name, *role)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stdout, token)
}
