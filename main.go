package main

import (
	"github.com/contoso/socialfeed/config"
	"github.com/contoso/socialfeed/models"
	"github.com/contoso/socialfeed/routes"
	"github.com/contoso/socialfeed/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db, err := config.OpenDatabase(cfg.DatabasePath, &models.Post{}, &models.Comment{}, &models.Like{})
	if err != nil {
		utils.Sugar.Fatalf("database init failed: %v", err)
	}

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
