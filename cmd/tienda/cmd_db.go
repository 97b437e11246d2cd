package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiendahq/tienda/config"
	"github.com/tiendahq/tienda/database/seeders"
	"github.com/tiendahq/tienda/pkg/database"
	"github.com/tiendahq/tienda/pkg/migration"
)

// bootDB loads config and opens both database pools.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// runners returns one migration runner per pool.
func runners() []*migration.Runner {
	return []*migration.Runner{
		migration.New(database.Public, migration.PoolPublic),
		migration.New(database.Private, migration.PoolPrivate),
	}
}

// tienda migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending migrations on both pools",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		for _, r := range runners() {
			if err := r.Run(); err != nil {
				return err
			}
		}
		return nil
	},
}

// tienda migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations on both pools",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		for _, r := range runners() {
			if err := r.Rollback(); err != nil {
				return err
			}
		}
		return nil
	},
}

// tienda migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration per pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		for _, r := range runners() {
			if err := r.Status(); err != nil {
				return err
			}
		}
		return nil
	},
}

// tienda seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders on both pools",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close()

		fmt.Println("Seeding public pool…")
		if err := seeders.RunAll(database.Public, seeders.PoolPublic); err != nil {
			return err
		}
		fmt.Println("Seeding private pool…")
		return seeders.RunAll(database.Private, seeders.PoolPrivate)
	},
}
