package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"stagelink/internal/config"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Usage = usage
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		errorLog.Fatal(err)
	}

	app := initializeApp(cfg, errorLog, infoLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.run(ctx, flag.Args()); err != nil {
		errorLog.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: stagelink [-config file] <command> [arguments]

Commands:
  login         -email -password
  register      -email -password -role -name [-city] [-capacity]
  logout
  whoami
  user          <userId>
  home
  offers
  offer show    <offerId>
  offer create  -title -city -venue -date [-description] [-genre] [-budget] [-capacity]
  apply         <offerId> -rate [-message]
  chat          [-offer id] [-send text]
  approve-chat  <offerId> -performer [-revoke]
  accept        <offerId> -performer
  conclude      <offerId> -status closed|cancelled
  review        <offerId> -score [-comment]
  delete-review <reviewId>
  profile
  profile update   [-name] [-city] [-email] [-slogan] [-bio] [-capacity]
  delete-account   -yes
`)
	flag.PrintDefaults()
}
