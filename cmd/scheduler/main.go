package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tomatoplanet/leads-go/config"
	"github.com/tomatoplanet/leads-go/db"
	"github.com/tomatoplanet/leads-go/repositories"
	"github.com/tomatoplanet/leads-go/services"
	"github.com/tomatoplanet/leads-go/utils"
)

func main() {
	runOnce := flag.Bool("run-once", false, "Send the digest immediately and exit")
	flag.Parse()

	// Load configuration from environment variables and .env file
	config.LoadConfig()
	utils.InitLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	// Initialize database connection
	db.Init()

	repos := repositories.New()

	var notifier services.Notifier = services.NoopNotifier{}
	if config.SendGridAPIKey != "" {
		notifier = services.NewSendGridNotifier(
			config.SendGridAPIKey,
			config.MailFrom,
			config.MailFromName,
			config.MailNotifyTo,
		)
	}
	digest := services.NewDigestService(repos, notifier)

	if *runOnce {
		if err := digest.SendDailyDigest(time.Now()); err != nil {
			log.Fatalf("Digest failed: %v", err)
		}
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(config.DigestCronSpec, func() {
		if err := digest.SendDailyDigest(time.Now()); err != nil {
			log.Printf("Digest failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid cron spec %q: %v", config.DigestCronSpec, err)
	}

	log.Printf("Starting digest scheduler (%s)", config.DigestCronSpec)
	c.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	log.Println("Shutdown signal")
	<-c.Stop().Done()
}
