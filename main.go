package main

import (
	"log"

	"content-server/confs"
	"content-server/db"
	"content-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database)
	srv.Start()
}
