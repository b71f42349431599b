package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/modcraft/framework/app"
	"github.com/km-arc/modcraft/framework/config"
	"github.com/km-arc/modcraft/framework/container"
	"github.com/km-arc/modcraft/framework/routing"
)

// Clock is a service shared by every module of an application.
type Clock struct{ loc *time.Location }

func (c *Clock) Now() time.Time { return time.Now().In(c.loc) }

// Visits counts greetings; one counter per application.
type Visits struct{ n atomic.Int64 }

// NewClock reads APP_TIMEZONE once "config" has loaded the .env files.
func NewClock(*config.Config) (*Clock, error) {
	loc, err := time.LoadLocation(config.Get("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, err
	}
	return &Clock{loc: loc}, nil
}

// Greeter is a module that adds routes during Init.
type Greeter struct {
	cfg *config.Config

	// maxName truncates route names; showVisits toggles the visit counter.
	maxName    int
	showVisits bool

	router *routing.Router
	clock  *Clock
	visits *Visits
	deps   *container.Resolver
}

func NewGreeter(cfg *config.Config, router *routing.Router, clock *Clock, visits *Visits, deps *container.Resolver) *Greeter {
	return &Greeter{
		cfg:        cfg,
		maxName:    config.GetInt("GREETER_MAX_NAME", 64),
		showVisits: config.GetBool("GREETER_SHOW_VISITS", true),
		router:     router,
		clock:      clock,
		visits:     visits,
		deps:       deps,
	}
}

func (g *Greeter) Name() string { return "greeter" }

func (g *Greeter) Init() error {
	g.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		n := g.visits.n.Add(1)
		if !g.showVisits {
			fmt.Fprintf(w, "Welcome to %s (%s)\n", g.cfg.App.Name, g.clock.Now().Format(time.RFC3339))
			return
		}
		fmt.Fprintf(w, "Welcome to %s (visit %d, %s)\n", g.cfg.App.Name, n, g.clock.Now().Format(time.RFC3339))
	})

	g.router.Get("/hello/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := routing.Param(r, "name")
		if g.maxName > 0 && len(name) > g.maxName {
			name = name[:g.maxName]
		}

		// Ad-hoc resolution with the route param as an override.
		msg, err := g.deps.Invoke([]string{"clock", "name"}, func(c *Clock, name string) string {
			return fmt.Sprintf("Hello, %s! It is %s.", name, c.Now().Format(time.Kitchen))
		}, container.Overrides{"name": name})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprintln(w, msg)
	})
	return nil
}

func (g *Greeter) Start() error { return nil }

func main() {
	root := app.NewRoot()
	global := app.Global(root)

	must(global.Service("clock", "config", NewClock))
	must(global.Singleton("visits", func() *Visits { return &Visits{} }))
	must(global.Module("greeter",
		[]string{"config", "router", "clock", "visits", "dependencies"},
		NewGreeter,
	))

	application, err := app.New(root)
	must(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger().Fatal("application stopped", zap.Error(err))
	}
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
