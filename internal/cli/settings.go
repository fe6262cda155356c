package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/jsontable"
	"github.com/bjaus/jsontable/internal/config"
)

type settings struct {
	build  jsontable.Options
	render jsontable.RenderOptions
	color  string
}

// loadConfig returns the config file named by --config, else the one found by
// lookup, else the defaults.
func loadConfig(f flags, lookup func() (string, bool)) (config.Config, error) {
	path := f.configPath
	if path == "" {
		p, ok := lookup()
		if !ok {
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// resolveSettings layers flags that were set explicitly over the config.
func resolveSettings(cmd *cobra.Command, f flags, lookup func() (string, bool)) (settings, error) {
	cfg, err := loadConfig(f, lookup)
	if err != nil {
		return settings{}, err
	}
	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("border") {
		cfg.Border = f.border
	}
	if changed("pagesize") {
		cfg.PageSize = f.pageSize
	}
	if changed("order") {
		cfg.Order = f.order
	}
	if changed("sort-policy") {
		cfg.SortPolicy = f.sortPolicy
	}
	if changed("color") {
		cfg.Color = f.color
	}
	if changed("max-width") {
		cfg.MaxWidth = f.maxWidth
	}
	if changed("no-header") {
		cfg.NoHeader = f.noHeader
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	window, err := resolveWindow(changed, f, cfg.PageSize)
	if err != nil {
		return settings{}, err
	}
	// Validate has already accepted these names.
	format, _ := jsontable.ParseFormat(cfg.Output)
	border, _ := jsontable.ParseBorder(cfg.Border)
	policy, _ := jsontable.ParsePolicy(cfg.SortPolicy)

	return settings{
		build: jsontable.Options{
			Columns:   f.columns,
			Window:    window,
			Sort:      f.sort,
			Direction: jsontable.ParseDirection(cfg.Order),
			Policy:    policy,
		},
		render: jsontable.RenderOptions{
			Format:        format,
			Border:        border,
			DisplayHeader: !cfg.NoHeader,
			MaxWidth:      cfg.MaxWidth,
		},
		color: cfg.Color,
	}, nil
}

// resolveWindow uses page arithmetic when --page is set and --skip/--take
// otherwise. Without --take every row is kept.
func resolveWindow(changed func(string) bool, f flags, pageSize int) (jsontable.Window, error) {
	if changed("page") {
		return jsontable.Paginate(f.page, pageSize)
	}
	take := jsontable.Unbounded()
	if changed("take") {
		take = jsontable.Limit(f.take)
	}
	return jsontable.NewWindow(f.skip, take)
}
