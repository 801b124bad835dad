/* main.go
 * The "main" method for running the dashboard backend. Starts the JSON API server and,
 * when enabled, the Discord bot frontend.
 * Usage: go run main.go -addr=":8080" -bot="false"
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	api "cf-faceoff/api/api"
	"cf-faceoff/bot"
	"cf-faceoff/web"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, relying on environment")
	}

	// Flags
	addrPtr := flag.String("addr", ":8080", "Address for the HTTP server to listen on")
	dbPtr := flag.String("db", "cf_faceoff", "MongoDB database name for the visit log")
	botPtr := flag.String("bot", "false", "Run the Discord bot frontend: takes true or false as argument")

	flag.Parse()

	runBot, err := convertStrToBool(*botPtr)
	if err != nil {
		log.Fatal("Invalid \"bot\" flag. Should be true or false")
	}

	apiPtr, err := api.NewAPI(*dbPtr, os.Getenv("MONGO_URI"), os.Getenv("CF_API_URL"))
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err := apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			log.Println("failed to disconnect store:", err)
		}
	}()

	if runBot {
		discordBot, err := bot.NewBot(os.Getenv("DISCORD_TOKEN"), apiPtr)
		if err != nil {
			log.Fatalf("failed to initialize bot: %v", err)
		}
		go func() {
			if err := discordBot.Run(); err != nil {
				log.Println("bot stopped:", err)
			}
		}()
	}

	if err := web.Start(web.Config{Addr: *addrPtr, API: apiPtr}); err != nil {
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
