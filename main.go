package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sheetshop/storefront/internal/core"
	errx "github.com/sheetshop/storefront/internal/core/error"
	"github.com/sheetshop/storefront/internal/shop/cart"
	"github.com/sheetshop/storefront/internal/shop/catalog"
	"github.com/sheetshop/storefront/internal/shop/checkout"
	"github.com/sheetshop/storefront/internal/shop/gallery"
	"github.com/sheetshop/storefront/internal/shop/model"
	"github.com/sheetshop/storefront/internal/shop/repo"
	"github.com/sheetshop/storefront/internal/shop/tools"
	logx "github.com/sheetshop/storefront/pkg/logger"
	pkgredis "github.com/sheetshop/storefront/pkg/redis"
)

// AppConfig defines all configurable parameters for the storefront demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL"`

	// Infrastructure
	Redis pkgredis.Config

	Store   model.StoreConfig
	Source  model.SourceConfig
	Session model.SessionConfig

	// Demo knobs
	DemoItems int    `envconfig:"DEMO_CART_ITEMS" default:"2"`
	DemoQuery string `envconfig:"DEMO_QUERY"`
	DemoHover bool   `envconfig:"DEMO_HOVER" default:"false"`
}

func main() {
	ctx := context.Background()
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
	logx.Init(logx.LoggerOpts{
		Environment: core.ParseEnvironment(envCfg.Environment),
		Level:       envCfg.LogLevel,
	})

	var cartRepo model.CartRepository
	if envCfg.Redis.Enabled() {
		rdb, err := envCfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
		}
		defer rdb.Close()
		cartRepo = repo.NewRedisCartRepository(rdb, envCfg.Session.TTL)
		logx.Info().Msg("Connected to Redis; cart sessions are persisted")
	}

	store := envCfg.Store
	src := catalog.NewCachedSource(store.SheetURL, catalog.NewHTTPSource(store.SheetURL, envCfg.Source), envCfg.Source)

	cat, err := catalog.Load(ctx, src)
	if err != nil {
		// fetch failures and empty sheets each have their own page state
		fmt.Println(errx.MessageOf(err))
		if errors.Is(err, errx.ErrFetchFailed) {
			os.Exit(1)
		}
		return
	}

	printCatalog(cat, store)

	if envCfg.DemoQuery != "" {
		mode := catalog.ParseSearchMode(store.SearchMode)
		hits := cat.Search(envCfg.DemoQuery, mode)
		fmt.Printf("\nSearch %q (%s): %d result(s)\n", envCfg.DemoQuery, mode, len(hits))
		for _, p := range hits {
			fmt.Printf("  [%d] %s\n", cat.ResolveIndex(p), p.Name())
		}
	}

	if first, ok := cat.At(0); ok && envCfg.DemoHover {
		previewHover(first, store)
	}

	session := cart.NewSession(uuid.NewString(), cat, cartRepo)
	if _, err := session.Restore(ctx); err != nil {
		logx.Warn().Err(err).Msg("could not restore cart session")
	}
	for i := 0; i < envCfg.DemoItems && i < cat.Len(); i++ {
		if err := session.Add(ctx, i); err != nil {
			logx.Error().Err(err).Int("index", i).Msg("add to cart failed")
		}
	}

	co := &checkout.Checkout{
		Formatter: checkout.NewFormatter(store.Checkout.Greeting, store.Currency),
		Handoff:   checkout.Handoff{BaseURL: store.Checkout.LinkBase, Recipient: store.AdminPhone},
	}

	shopTools := tools.GetQueryTools(tools.Deps{
		Session:     session,
		Checkout:    co,
		FallbackURL: store.FallbackImageURL,
		Currency:    store.Currency,
	})
	if infos, err := tools.GetToolInfos(ctx, shopTools); err == nil {
		for _, info := range infos {
			logx.Debug().Str("tool", info.Name).Msg("assistant tool available")
		}
	}
	if envCfg.DemoQuery != "" {
		args, _ := json.Marshal(tools.SearchProductInput{Query: envCfg.DemoQuery, MaxResults: 3})
		out, err := tools.Dispatch(ctx, shopTools, tools.ToolSearchProduct, string(args))
		if err != nil {
			logx.Error().Err(err).Msg("search tool failed")
		} else {
			fmt.Printf("\nsearch_product -> %s\n", out)
		}
	}

	res, err := co.Prepare(session.Cart())
	if err != nil {
		fmt.Println(errx.MessageOf(err))
		return
	}
	fmt.Printf("\n%s\n\nOpen: %s\n", res.Message, res.Link)
}

// previewHover plays the hover cycle of one product card for a single pass
// through its views, then leaves the card the way a pointer exit would.
func previewHover(p *model.Product, store model.StoreConfig) {
	preview := gallery.NewPreview(p, store.FallbackImageURL)
	if !preview.HasNavigation() {
		fmt.Printf("\n%s has a single view: %s\n", p.Name(), preview.Current().URL)
		return
	}

	fmt.Printf("\nHovering %s\n", p.Name())
	c := gallery.NewCycler(preview.Views(), store.Hover.Delay, store.Hover.CycleInterval, func(v model.View) {
		fmt.Printf("  -> %s: %s\n", v.Label, v.URL)
	})
	c.Activate()
	time.Sleep(store.Hover.Delay + store.Hover.CycleInterval*time.Duration(len(preview.Views())-1) + store.Hover.CycleInterval/2)
	c.Deactivate()
	c.Stop()
}

func printCatalog(cat *catalog.Catalog, store model.StoreConfig) {
	slides := gallery.HeroSlides(cat.Products(), store.Slider.MaxSlides)
	if len(slides) > 0 {
		fmt.Println("Featured:")
		for _, s := range slides {
			fmt.Printf("  * %s  %s\n", s.Caption, s.Image)
		}
	}

	for _, g := range cat.GroupByCategory() {
		fmt.Printf("\n== %s ==\n", g.Category)
		for _, p := range g.Products {
			views := catalog.ResolveViews(p, store.FallbackImageURL)
			fmt.Printf("  [%d] %s  %s %s  (%d views)\n", p.Position, p.Name(), p.Price(), store.Currency, len(views))
		}
	}
}
