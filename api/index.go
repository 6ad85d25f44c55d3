package handler

import (
	"net/http"
	"sync"

	"mykuliah/config"
	"mykuliah/di"
	"mykuliah/shared/logger"
	httpTransport "mykuliah/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service *httpTransport.HTTP
)

// Handler is the serverless entry point. The service is built once per instance so
// the in-memory booking store survives between invocations of the same instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		var err error

		service, err = di.InitializeService()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize service")
		}
	})

	if service == nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	service.ServeHTTP(w, r)
}
