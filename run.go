package contribgif

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"
)

/*
Run is the whole pipeline: fetch the calendar, draw the grid, animate the
character and write the GIF (plus the SVG, when configured). The config is
validated before anything is fetched. Preview output, if enabled, goes to
stdout.
*/
func Run(ctx context.Context, cfg Config, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	policy, err := ParsePolicy(cfg.Motion)
	if err != nil {
		return err
	}

	fetcher := NewFetcher(cfg.Token, WithEndpoint(cfg.Endpoint))
	cal, err := fetcher.Fetch(ctx, cfg.Username)
	if err != nil {
		return err
	}
	log.Info().Str("user", cfg.Username).Int("weeks", cal.Cols()).Int("total", cal.Total()).Msg("fetched contribution calendar")

	grid := NewGridRenderer(WithTitle(cfg.Title))
	base := grid.Render(cal)
	log.Debug().Int("width", base.Bounds().Dx()).Int("height", base.Bounds().Dy()).Msg("rendered grid")

	if cfg.Preview {
		if err := Preview(stdout, base, DefaultPreviewWidth); err != nil {
			return err
		}
	}

	if cfg.SVGOutput != "" {
		if err := WriteSVG(cfg.SVGOutput, grid, cal); err != nil {
			return err
		}
		log.Info().Str("path", cfg.SVGOutput).Msg("wrote svg")
	}

	animator := NewAnimator(policy, grid.Layout(), WithFrames(cfg.Frames), WithGlow(cfg.Glow))
	frames := animator.Animate(base, cal.Cols())
	log.Debug().Int("frames", len(frames)).Str("motion", policy.Name).Msg("animated")

	n, err := WriteGIF(cfg.Output, NewGIFEncoder(WithDelay(cfg.Delay)), frames)
	if err != nil {
		return err
	}
	log.Info().Str("path", cfg.Output).Int("bytes", n).Msg("wrote animation")

	if cfg.PreviewAnimation {
		return PlayPreview(ctx, stdout, frames, DefaultPreviewWidth, cfg.Delay)
	}
	return nil
}
