package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Ali-ahsan35/vacation-rental-A7/database"
	"github.com/Ali-ahsan35/vacation-rental-A7/importer"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: import_locations <csv-path>")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	database.ConnectDatabase()
	defer database.DB.Close()

	summary, err := importer.ImportLocations(database.DB, flag.Arg(0))
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	for _, row := range summary.Rows {
		fmt.Printf("Row %d: %s\n", row.Line, row.Reason)
	}
	fmt.Println("Import summary:", summary)
}
