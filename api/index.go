package handler

import (
	"net/http"
	"sync"

	"tablebook/config"
	"tablebook/di"
	"tablebook/shared/logger"
)

var (
	handler http.Handler
	once    sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built once
// per warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	handler.ServeHTTP(w, r)
}
