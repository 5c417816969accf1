package gallery

import (
	"context"
	"time"

	"github.com/sheetshop/storefront/internal/shop/catalog"
	"github.com/sheetshop/storefront/internal/shop/model"
)

const DefaultMaxSlides = 5

// Slide is one hero banner entry.
type Slide struct {
	Product *model.Product
	Image   string
	Caption string
}

// HeroSlides picks the first max products that name their own image.
func HeroSlides(products []*model.Product, max int) []Slide {
	if max <= 0 {
		max = DefaultMaxSlides
	}
	var slides []Slide
	for _, p := range products {
		if len(slides) == max {
			break
		}
		if !catalog.HasOwnImage(p) {
			continue
		}
		slides = append(slides, Slide{Product: p, Image: catalog.PrimaryImage(p, ""), Caption: p.Name()})
	}
	return slides
}

// Slider loops over hero slides. It is driven from a single goroutine.
type Slider struct {
	slides []Slide
	index  int
}

func NewSlider(slides []Slide) *Slider {
	return &Slider{slides: slides}
}

func (s *Slider) Len() int { return len(s.slides) }

// Active returns the slide on display.
func (s *Slider) Active() (Slide, bool) {
	if len(s.slides) == 0 {
		return Slide{}, false
	}
	return s.slides[s.index], true
}

// Advance moves to the next slide, wrapping after the last.
func (s *Slider) Advance() (Slide, bool) {
	if len(s.slides) == 0 {
		return Slide{}, false
	}
	s.index = (s.index + 1) % len(s.slides)
	return s.slides[s.index], true
}

// Run advances every interval and reports each new slide until ctx is done.
// It returns immediately when there is nothing to show.
func (s *Slider) Run(ctx context.Context, interval time.Duration, onAdvance func(Slide)) {
	if len(s.slides) == 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			slide, _ := s.Advance()
			if onAdvance != nil {
				onAdvance(slide)
			}
		}
	}
}
