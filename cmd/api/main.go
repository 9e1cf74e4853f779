package main

import (
	"go.uber.org/fx"

	appfx "github.com/bharath-541/FinSight/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
