package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/alexedwards/argon2id"

	"github.com/jonboyd/site-server/internal/util"
)

func main() {
	useArgon := flag.Bool("argon2id", false, "emit an argon2id hash instead of bcrypt")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: go run scripts/hash-password.go [-argon2id] <password>\n")
		os.Exit(1)
	}

	password := flag.Arg(0)

	var (
		hash string
		err  error
	)
	if *useArgon {
		hash, err = argon2id.CreateHash(password, argon2id.DefaultParams)
	} else {
		hash, err = util.HashPassword(password)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
