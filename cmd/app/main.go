package main

import (
	"github.com/blogforge/core/internal/app"
	"github.com/blogforge/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
