package main

import (
	"github.com/ysn7199/yourmovies/core/internal/app"
	"github.com/ysn7199/yourmovies/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
