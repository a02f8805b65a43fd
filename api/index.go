package handler

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"net/http"
	"sync"
)

var (
	app  *di.App
	once sync.Once
)

// Handler is the serverless entry point. Warm invocations reuse the wiring.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.Configure(cfg)

		app = di.InitializeService()
	})

	app.HTTP.ServeHTTP(w, r)
}
