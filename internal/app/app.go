package app

import (
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/layensweets/site/internal/adapters/httpserver"
	"github.com/layensweets/site/internal/adapters/llm"
	"github.com/layensweets/site/internal/adapters/notify"
	"github.com/layensweets/site/internal/adapters/repo/sitedata"
	"github.com/layensweets/site/internal/adapters/store"
	"github.com/layensweets/site/internal/usecase"
)

type App struct {
	DB        *gorm.DB
	Data      *sitedata.Repository
	OrderUC   *usecase.OrderUC
	CatalogUC *usecase.CatalogUC
	Concierge *llm.Concierge
}

// NewApp wires the application. db may be nil: without store credentials the
// site runs in offline mode against an in-memory store seeded only with the
// bundled defaults, and keeps rendering instead of crashing.
func NewApp(db *gorm.DB) (*App, error) {
	var kv store.KV
	if db != nil {
		pg, err := store.NewPostgresKV(db)
		if err != nil {
			return nil, err
		}
		kv = pg
	} else {
		log.Warn().Msg("no database configured, running in offline mode with default data")
		kv = store.NewMemoryKV()
	}

	data := sitedata.New(kv)

	app := &App{DB: db, Data: data}
	app.OrderUC = &usecase.OrderUC{Data: data, Notify: notify.OrderEmail}
	app.CatalogUC = &usecase.CatalogUC{Data: data}
	app.Concierge = llm.New(os.Getenv("OPENAI_API_KEY"))
	if !app.Concierge.Enabled() {
		log.Warn().Msg("OPENAI_API_KEY not set, concierge chat disabled")
	}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Data, a.OrderUC, a.CatalogUC, a.Concierge)
}
