package main

import (
	"context"
	"log"
	"os"

	"pronet-api/internal"
)

// todo: Linters(GolangCiLint)
// todo: background reaper for orphaned assets (superseded avatars)

func main() {
	ctx := context.Background()

	app, err := internal.NewApp(ctx)
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	app.InitControllers()

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("pronetapi stopped with error: %v", err)
		os.Exit(1)
	}
}
