package main

import (
	"log"

	"github.com/hibikero/nutributler/cmd/config"
	migration "github.com/hibikero/nutributler/cmd/database/migrate"
	"github.com/hibikero/nutributler/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, alertTask, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	if err := alertTask.Start(); err != nil {
		log.Fatalf("failed to start expiry alerts: %v", err)
	}
	defer alertTask.Stop()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
