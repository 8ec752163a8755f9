package main

import (
	"encoding/gob"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/rogold/internal/config"
	dbimpl "github.com/sidereusnuntius/rogold/internal/db/impl"
	"github.com/sidereusnuntius/rogold/internal/initialization"
	service "github.com/sidereusnuntius/rogold/internal/service/impl"
	"github.com/sidereusnuntius/rogold/internal/state"
	"github.com/sidereusnuntius/rogold/internal/storage/docstore"
	"github.com/sidereusnuntius/rogold/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}

	store, err := docstore.New(config.DataDir)
	if err != nil {
		log.Fatal(err)
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("game store connection established")

	if err = initialization.SetupDB(d, config.MigrationsFolder, config.DbUrl); err != nil {
		log.Fatal(err)
	}

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(config.SessionKey)

	games := dbimpl.New(config, d)

	state := state.State{
		Store:  store,
		Games:  games,
		Config: config,
	}

	service, err := service.New(state)
	if err != nil {
		log.Fatal(err)
	}

	handler := web.New(&config, service, games, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	zero.Info().Uint16("port", config.Port).Msg("started server")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
