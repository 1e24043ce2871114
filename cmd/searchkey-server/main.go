package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/swiftype/app-search-go/appsearch"
	"github.com/swiftype/app-search-go/config"
)

func main() {
	var (
		configFile string
		addr       string
		debug      bool
		err        error

		cert    string
		certKey string
	)

	flag.StringVar(&configFile, "config", "config.yaml", "Configuration file")
	flag.StringVar(&addr, "addr", "", "Address to listen on (overrides server.addr)")
	flag.BoolVar(&debug, "debug", false, "Debug mode")

	flag.StringVar(&cert, "tlscert", "", "Certificate file for TLS (overrides server.tlsCert)")
	flag.StringVar(&certKey, "tlskey", "", "Certificate key for TLS (overrides server.tlsKey)")

	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	if debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	}

	defer logger.Sync()

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Sugar().Fatalf("Error loading config file %s: %v", configFile, err)
	}

	if cfg.SearchKeyIssuer.Config == nil {
		logger.Sugar().Fatalf("Must configure a search key issuer")
	}

	if cfg.Authenticator.Config == nil {
		logger.Sugar().Fatalf("Must configure an authenticator")
	}

	if cfg.Authorizer.Config == nil {
		logger.Sugar().Fatalf("Must configure an authorizer")
	}

	issuer, err := cfg.SearchKeyIssuer.Config.CreateSearchKeyIssuer(cfg.Client.APIKey)
	if err != nil {
		logger.Sugar().Fatalf("Error creating search key issuer: %v", err)
	}

	authenticator, err := cfg.Authenticator.Config.CreatePasswordAuthenticator()
	if err != nil {
		logger.Sugar().Fatalf("Error creating authenticator: %v", err)
	}

	authorizer, err := cfg.Authorizer.Config.CreateAuthorizer()
	if err != nil {
		logger.Sugar().Fatalf("Error creating authorizer: %v", err)
	}

	service := appsearch.SearchKeyServiceImpl{
		Authenticator: authenticator,
		Authorizer:    authorizer,
		Issuer:        issuer,
		Clock:         clockwork.NewRealClock(),
		Logger:        logger,
	}

	server := appsearch.SearchKeyServer{
		Service: service,
	}

	router := mux.NewRouter()
	router.Path("/search-key").Methods("GET").HandlerFunc(server.QueryHandler)
	router.Path("/search-key").Methods("POST").HandlerFunc(server.JSONHandler)

	if addr == "" {
		addr = cfg.Server.Addr
	}

	if addr == "" {
		addr = "localhost:8080"
	}

	if cert == "" {
		cert = cfg.Server.TLSCert
	}

	if certKey == "" {
		certKey = cfg.Server.TLSKey
	}

	logger.Info("starting search key server", zap.String("addr", addr), zap.Bool("tls", cert != ""))

	if cert == "" {
		err = http.ListenAndServe(addr, router)
	} else if certKey == "" {
		logger.Sugar().Fatalf("Must provide certificate (-tlscert) and key (-tlskey)")
	} else {
		err = http.ListenAndServeTLS(addr, cert, certKey, router)
	}

	if err != nil {
		logger.Sugar().Infof("Error serving: %v", err)
	}
}
