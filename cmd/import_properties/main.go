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
	skipLocation := flag.Bool("skip-location", false,
		"import without resolving locations; assign them later through the admin endpoints")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: import_properties [--skip-location] <csv-path>")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	database.ConnectDatabase()
	defer database.DB.Close()

	if *skipLocation {
		log.Println("Location resolution skipped. Assign locations through the admin endpoints!")
	}

	summary, err := importer.ImportProperties(database.DB, flag.Arg(0), *skipLocation)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	for _, row := range summary.Rows {
		fmt.Printf("Row %d: %s\n", row.Line, row.Reason)
	}
	fmt.Println("Import summary:", summary)
}
