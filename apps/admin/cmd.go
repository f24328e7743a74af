package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/iiskills/shiksha/core"
)

var (
	readPasswordFunc           = term.ReadPassword // mockable
	stdout           io.Writer = os.Stdout

	errHelp       = errors.New("help provided")
	errDBDisabled = errors.New("database backend is not enabled")
)

type commandLine struct {
	conf *core.Config
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  hashpassword - generate a bcrypt hash for the admin password (prompted)")
	fmt.Println("  migrate      - run database migrations (postgres backend only)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "hashpassword":
		hashPasswordCmd := flag.NewFlagSet("hashpassword", flag.ExitOnError)
		if err := hashPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.hashPassword(string(pwd))
	case "migrate":
		migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
		if err := migrateCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.migrate()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) hashPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "ADMINPASSWORDHASH=%s\n", hash)
	return nil
}
