package main

import (
	"github.com/iiskills/shiksha/storage/database"
)

func (cli *commandLine) migrate() error {
	if !cli.conf.Database.Enabled {
		return errDBDisabled
	}
	if err := database.CreateIfNotExist(cli.conf); err != nil {
		return err
	}
	db, err := database.Open(cli.conf)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return database.Migrate(db.DB)
}
