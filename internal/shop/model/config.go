package model

import "time"

// ================ Config ================
type StoreConfig struct {
	SheetURL         string `envconfig:"SHEET_URL" required:"true"`
	AdminPhone       string `envconfig:"ADMIN_PHONE" default:"250786023627"`
	FallbackImageURL string `envconfig:"FALLBACK_IMAGE_URL" default:"https://i.postimg.cc/TPXS02cm/prima-essentials.png"`
	Currency         string `envconfig:"CURRENCY" default:"RWF"`
	SearchMode       string `envconfig:"SEARCH_MODE" default:"extended"`

	Hover struct {
		Delay         time.Duration `envconfig:"HOVER_DELAY" default:"2000ms"`
		CycleInterval time.Duration `envconfig:"HOVER_CYCLE_INTERVAL" default:"2s"`
	}
	Slider struct {
		Interval  time.Duration `envconfig:"SLIDER_INTERVAL" default:"4s"`
		MaxSlides int           `envconfig:"SLIDER_MAX_SLIDES" default:"5"`
	}
	Checkout struct {
		Greeting string `envconfig:"CHECKOUT_GREETING" default:"Hello, I want to order:"`
		LinkBase string `envconfig:"CHAT_LINK_BASE" default:"https://wa.me/"`
	}
}

type SourceConfig struct {
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`
	CacheTTL     time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
	CacheSize    int           `envconfig:"CATALOG_CACHE_SIZE" default:"16"`
}

type SessionConfig struct {
	TTL time.Duration `envconfig:"CART_SESSION_TTL" default:"30m"`
}
