// Command tienda is the project CLI.
//
// Install:
//
//	go install github.com/tiendahq/tienda/cmd/tienda@latest
//
// Commands:
//
//	tienda serve            # start the HTTP server
//	tienda migrate          # run migrations on both pools
//	tienda migrate:rollback # rollback the last batch per pool
//	tienda migrate:status   # per-pool migration status
//	tienda seed             # seed demo data
package main
